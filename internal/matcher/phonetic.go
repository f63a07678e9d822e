package matcher

// PhoneticCode produces a fixed-length Soundex-style code for last-resort
// matching of names that sound alike but are spelled differently. The first
// letter is kept verbatim (uppercased); the remaining consonants map to
// articulation-class digits. Vowels reset the previous class so a repeated
// class after a vowel is re-emitted. Codes are padded with '0' to length 4.
func PhoneticCode(name string) string {
	normalized := Normalize(name)

	var letters []rune

	for _, r := range normalized {
		if r >= 'a' && r <= 'z' {
			letters = append(letters, r)
		}
	}

	if len(letters) == 0 {
		return ""
	}

	code := make([]byte, 0, 4)
	code = append(code, byte(letters[0])-'a'+'A')

	lastClass := phoneticClass(letters[0])

	for _, r := range letters[1:] {
		if len(code) == 4 {
			break
		}

		if isVowel(r) {
			lastClass = 0
			continue
		}

		class := phoneticClass(r)
		if class == 0 {
			// h, w, y: neither consonant class nor reset.
			continue
		}

		if class != lastClass {
			code = append(code, class)
		}

		lastClass = class
	}

	for len(code) < 4 {
		code = append(code, '0')
	}

	return string(code)
}

// phoneticClass groups consonants by articulation: labials, velars and
// sibilants, dentals, liquids, nasals.
func phoneticClass(r rune) byte {
	switch r {
	case 'b', 'f', 'p', 'v':
		return '1'
	case 'c', 'g', 'j', 'k', 'q', 's', 'x', 'z':
		return '2'
	case 'd', 't':
		return '3'
	case 'l', 'r':
		return '4'
	case 'm', 'n':
		return '5'
	default:
		return 0
	}
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	default:
		return false
	}
}

// phoneticEqual reports whether two codes match: equal and long enough to
// carry signal.
func phoneticEqual(a, b string) bool {
	return len(a) >= 2 && a == b
}
