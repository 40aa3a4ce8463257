package util

// Bitmap is a plain bit set over row indices.
type Bitmap struct {
	Bits []uint8
}

func EntryCount(count int) int {
	return (count + 7) / 8
}

func GetEntryIndex(idx uint64) (uint64, uint64) {
	return idx / 8, idx % 8
}

func EntryIsSet(e uint8, pos uint64) bool {
	return e&(1<<pos) != 0
}

// Init allocates room for count rows, all unset.
func (bm *Bitmap) Init(count int) {
	bm.Bits = make([]uint8, EntryCount(count))
}

func (bm *Bitmap) Invalid() bool {
	return len(bm.Bits) == 0
}

func (bm *Bitmap) Set(idx uint64, valid bool) {
	eIdx, pos := GetEntryIndex(idx)
	if valid {
		bm.Bits[eIdx] |= 1 << pos
	} else {
		bm.Bits[eIdx] &= ^(1 << pos)
	}
}

func (bm *Bitmap) IsSet(idx uint64) bool {
	if bm.Invalid() {
		return false
	}
	eIdx, pos := GetEntryIndex(idx)
	return EntryIsSet(bm.Bits[eIdx], pos)
}

func (bm *Bitmap) CountSet(count int) int {
	res := 0
	for i := 0; i < count; i++ {
		if bm.IsSet(uint64(i)) {
			res++
		}
	}
	return res
}
