// core/cipher/alphabet.go
package cipher

// The machine works over the 94 visible ASCII characters, '!' through '~'.
// Space and control bytes are outside the alphabet.
const (
	First = '!'
	Last  = '~'
	Size  = Last - First + 1
)

var index [256]int8

func init() {
	for i := range index {
		index[i] = -1
	}
	for i := 0; i < Size; i++ {
		index[First+i] = int8(i)
	}
}

// Index returns the alphabet position of b.
func Index(b byte) (int, bool) {
	i := index[b]
	if i < 0 {
		return 0, false
	}
	return int(i), true
}

// Symbol returns the byte at alphabet position i (taken mod Size).
func Symbol(i int) byte { return byte(First + mod(i)) }

// Contains reports whether b is inside the alphabet.
func Contains(b byte) bool { return index[b] >= 0 }

func mod(i int) int {
	i %= Size
	if i < 0 {
		i += Size
	}
	return i
}
