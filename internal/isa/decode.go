package isa

// buckets groups Table by the opcode word's top nibble (bits 12-15), the
// first decoding step spec.md §4.2 describes: "bucket the table by the top
// nibble of the opcode word, then scan linearly within the bucket in table
// order." Built once from Table at package init.
var buckets [16][]*Entry

func init() {
	for i := range Table {
		e := &Table[i]
		nibble := e.Result >> 12
		if e.Mask>>12 == 0xF {
			buckets[nibble] = append(buckets[nibble], e)
			continue
		}
		// A mask that doesn't pin the top nibble (e.g. the branch family's
		// 0xF000 mask does pin it; the 0x0000/0x0000 sentinel does not) must
		// be visible from every bucket it could still match.
		for n := 0; n < 16; n++ {
			if uint16(n)&(e.Mask>>12) == e.Result>>12 {
				buckets[n] = append(buckets[n], e)
			}
		}
	}
}

// Decode finds the first entry in Table whose mask/result/cpu_mask matches
// word under the given configured CPU set (spec.md §4.2 step 1). The final
// "dc.w" sentinel entry always matches, so Decode always returns an entry;
// the bool is false when that entry is the sentinel.
func Decode(word uint16, cpus CPUMask) (*Entry, bool) {
	bucket := buckets[word>>12]
	for _, e := range bucket {
		if e.Matches(word, cpus) {
			return e, e.Family != FamilyDCW
		}
	}
	// Unreachable: the sentinel entry (mask 0, result 0) is present in every
	// bucket and always matches.
	return &Table[len(Table)-1], false
}
