package convert

import "fmt"

func ExampleDigest_Convert() {
	digest, _ := Digest{Algorithm: "sha256"}.Convert([]byte("test"))
	fmt.Println(digest)
	// Output: [159 134 208 129 136 76 125 101 154 47 234 160 197 90 208 21 163 191 79 27 43 11 130 44 209 93 108 21 176 240 10 8]
}
