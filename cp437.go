package webterm

// CP437 (DOS) character encoding.
//
// CP437 is the original IBM PC character set used by DOS and BBS systems:
// ASCII below 128, box-drawing, shading, and national characters above.

// cp437Table maps every CP437 byte to its Unicode code point. The control
// range 0x00..0x1F uses the DOS pictographs (smileys, card suits, arrows)
// rather than C0 controls, since screen cells always hold printable glyphs.
var cp437Table = [256]rune{
	' ', '☺', '☻', '♥', '♦', '♣', '♠', '•', '◘', '○', '◙', '♂', '♀', '♪', '♫', '☼',
	'►', '◄', '↕', '‼', '¶', '§', '▬', '↨', '↑', '↓', '→', '←', '∟', '↔', '▲', '▼',
	' ', '!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?',
	'@', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', '[', '\\', ']', '^', '_',
	'`', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '{', '|', '}', '~', '⌂',
	'Ç', 'ü', 'é', 'â', 'ä', 'à', 'å', 'ç', 'ê', 'ë', 'è', 'ï', 'î', 'ì', 'Ä', 'Å',
	'É', 'æ', 'Æ', 'ô', 'ö', 'ò', 'û', 'ù', 'ÿ', 'Ö', 'Ü', '¢', '£', '¥', '₧', 'ƒ',
	'á', 'í', 'ó', 'ú', 'ñ', 'Ñ', 'ª', 'º', '¿', '⌐', '¬', '½', '¼', '¡', '«', '»',
	'░', '▒', '▓', '│', '┤', '╡', '╢', '╖', '╕', '╣', '║', '╗', '╝', '╜', '╛', '┐',
	'└', '┴', '┬', '├', '─', '┼', '╞', '╟', '╚', '╔', '╩', '╦', '╠', '═', '╬', '╧',
	'╨', '╤', '╥', '╙', '╘', '╒', '╓', '╫', '╪', '┘', '┌', '█', '▄', '▌', '▐', '▀',
	'α', 'ß', 'Γ', 'π', 'Σ', 'σ', 'µ', 'τ', 'Φ', 'Θ', 'Ω', 'δ', '∞', 'φ', 'ε', '∩',
	'≡', '±', '≥', '≤', '⌠', '⌡', '÷', '≈', '°', '∙', '·', '√', 'ⁿ', '²', '■', ' ',
}

var cp437Reverse = func() map[rune]byte {
	m := make(map[rune]byte, 256)
	for i, r := range cp437Table {
		if _, ok := m[r]; !ok {
			m[r] = byte(i)
		}
	}
	// Space appears at 0x00, 0x20, and 0xFF; the ASCII one is canonical.
	m[' '] = ' '
	return m
}()

// DecodeCP437 converts a CP437 byte to its Unicode character.
func DecodeCP437(b byte) rune {
	return cp437Table[b]
}

// EncodeCP437 converts a Unicode character back to a CP437 byte.
// Returns false if the character has no CP437 representation.
func EncodeCP437(r rune) (byte, bool) {
	b, ok := cp437Reverse[r]
	return b, ok
}
