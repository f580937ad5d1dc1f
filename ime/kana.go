package ime

// kanaPairs lists romaji and hiragana in table order.
var kanaPairs = []string{
	"a", "あ", "i", "い", "u", "う", "e", "え", "o", "お",
	"ka", "か", "ki", "き", "ku", "く", "ke", "け", "ko", "こ",
	"sa", "さ", "si", "し", "su", "す", "se", "せ", "so", "そ",
	"ta", "た", "ti", "ち", "tu", "つ", "tsu", "つ", "te", "て", "to", "と",
	"na", "な", "ni", "に", "nu", "ぬ", "ne", "ね", "no", "の",
	"ha", "は", "hi", "ひ", "hu", "ふ", "he", "へ", "ho", "ほ",
	"ma", "ま", "mi", "み", "mu", "む", "me", "め", "mo", "も",
	"ya", "や", "yu", "ゆ", "yo", "よ",
	"ra", "ら", "ri", "り", "ru", "る", "re", "れ", "ro", "ろ",
	"wa", "わ", "wo", "を",
	"nn", "ん",
	"ga", "が", "gi", "ぎ", "gu", "ぐ", "ge", "げ", "go", "ご",
	"za", "ざ", "zi", "じ", "zu", "ず", "ze", "ぜ", "zo", "ぞ",
	"da", "だ", "di", "ぢ", "du", "づ", "de", "で", "do", "ど",
	"ba", "ば", "bi", "び", "bu", "ぶ", "be", "べ", "bo", "ぼ",
	"pa", "ぱ", "pi", "ぴ", "pu", "ぷ", "pe", "ぺ", "po", "ぽ",
	"kya", "きゃ", "kyu", "きゅ", "kyo", "きょ",
	"gya", "ぎゃ", "gyu", "ぎゅ", "gyo", "ぎょ",
	"sha", "しゃ", "shu", "しゅ", "sho", "しょ",
	"zya", "じゃ", "zyu", "じゅ", "zyo", "じょ",
	"tya", "ちゃ", "tyu", "ちゅ", "tyo", "ちょ",
	"dya", "ぢゃ", "dyu", "ぢゅ", "dyo", "ぢょ",
	"nya", "にゃ", "nyu", "にゅ", "nyo", "にょ",
	"hya", "ひゃ", "hyu", "ひゅ", "hyo", "ひょ",
	"bya", "びゃ", "byu", "びゅ", "byo", "びょ",
	"pya", "ぴゃ", "pyu", "ぴゅ", "pyo", "ぴょ",
	"mya", "みゃ", "myu", "みゅ", "myo", "みょ",
	"rya", "りゃ", "ryu", "りゅ", "ryo", "りょ",
	"tsa", "ツァ", "tsi", "ツィ", "tse", "ツェ", "tso", "ツォ",
}

// KanaTable returns the romaji to hiragana table. Its longest sequence is 3.
func KanaTable() *Table {
	entries := make([]Entry, 0, len(kanaPairs)/2)
	for i := 0; i+1 < len(kanaPairs); i += 2 {
		seq, err := Romaji(kanaPairs[i])
		if err != nil {
			panic(err)
		}
		entries = append(entries, Entry{Seq: seq, Text: kanaPairs[i+1]})
	}
	return NewTable(entries...)
}

// SymbolTable returns the JIS symbol table: Shift with a digit row key, and
// Control+Alt+G for γ. Every left/right modifier pairing is present.
func SymbolTable() *Table {
	var entries []Entry
	for _, ctrl := range []Code{ControlLeft, ControlRight} {
		for _, alt := range []Code{AltLeft, AltRight} {
			entries = append(entries, Entry{Seq: []Code{ctrl, alt, Key('g')}, Text: "γ"})
		}
	}
	symbols := []struct {
		key  Code
		text string
	}{
		{Digit(1), "!"}, {Digit(2), `"`}, {Digit(3), "#"},
		{Digit(4), "$"}, {Digit(5), "%"}, {Digit(6), "&"},
		{Digit(7), "'"}, {Digit(8), "("}, {Digit(9), ")"},
		{Equal, "="},
	}
	for _, shift := range []Code{ShiftLeft, ShiftRight} {
		for _, s := range symbols {
			entries = append(entries, Entry{Seq: []Code{shift, s.key}, Text: s.text})
		}
	}
	return NewTable(entries...)
}

// DefaultTable is KanaTable overlaid with SymbolTable.
func DefaultTable() *Table {
	return KanaTable().Merge(SymbolTable())
}
