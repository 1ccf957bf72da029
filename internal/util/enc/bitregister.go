package enc

// BitRegister is a shift register which takes bits in (most significant bit first) and gives them
// back in groups of a fixed width. The encoder feeds it bytes and drains 3-bit groups, the decoder
// feeds it 3-bit groups and drains bytes.
type BitRegister struct {
	width uint
	buf   uint32
	n     uint
}

// NewBitRegister creates a register draining groups of `width` bits. Width must be between 1 and 16.
func NewBitRegister(width uint) *BitRegister {
	if width == 0 || width > 16 {
		panic("bit register width must be between 1 and 16")
	}
	return &BitRegister{
		width: width,
	}
}

// Push appends the lowest `bits` bits of value to the register. Callers must drain the register
// with Pop often enough that it never holds more than 32 bits.
func (r *BitRegister) Push(value uint32, bits uint) {
	mask := uint32(1)<<bits - 1
	r.buf = r.buf<<bits | value&mask
	r.n += bits
}

// Pop removes one complete group from the front of the register
func (r *BitRegister) Pop() (uint32, bool) {
	if r.n < r.width {
		return 0, false
	}
	r.n -= r.width
	res := r.buf >> r.n
	r.buf &= uint32(1)<<r.n - 1
	return res, true
}

// Flush drains the next group from the register. A trailing partial group is padded with zeros on
// the right. It returns false if the register is empty.
func (r *BitRegister) Flush() (uint32, bool) {
	if r.n == 0 {
		return 0, false
	}
	if r.n >= r.width {
		return r.Pop()
	}
	res := r.buf << (r.width - r.n)
	r.buf = 0
	r.n = 0
	return res, true
}

// Pending returns the number of bits held in the register
func (r *BitRegister) Pending() uint {
	return r.n
}
