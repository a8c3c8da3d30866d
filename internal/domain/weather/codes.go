package weather

import (
	"fmt"
	"sort"
)

// Entry is a translated WMO weather code.
type Entry struct {
	Label string
	Icon  string
}

const unknownIcon = "❓"

// codeTable covers the WMO codes Open-Meteo emits.
var codeTable = map[int]Entry{
	0:  {Label: "快晴", Icon: "☀️"},
	1:  {Label: "晴れ", Icon: "🌤️"},
	2:  {Label: "ところにより曇り", Icon: "🌥️"},
	3:  {Label: "曇り", Icon: "☁️"},
	45: {Label: "霧", Icon: "🌫️"},
	48: {Label: "霧氷", Icon: "🌫️"},
	51: {Label: "霧雨 (弱)", Icon: "🌧️"},
	53: {Label: "霧雨 (中)", Icon: "🌧️"},
	55: {Label: "霧雨 (強)", Icon: "🌧️"},
	56: {Label: "着氷性の霧雨 (弱)", Icon: "🌧️"},
	57: {Label: "着氷性の霧雨 (強)", Icon: "🌧️"},
	61: {Label: "雨 (弱)", Icon: "🌧️"},
	63: {Label: "雨 (中)", Icon: "🌧️"},
	65: {Label: "雨 (強)", Icon: "🌧️"},
	66: {Label: "着氷性の雨 (弱)", Icon: "🌧️"},
	67: {Label: "着氷性の雨 (強)", Icon: "🌧️"},
	71: {Label: "雪 (弱)", Icon: "🌨️"},
	73: {Label: "雪 (中)", Icon: "🌨️"},
	75: {Label: "雪 (強)", Icon: "🌨️"},
	77: {Label: "霧雪", Icon: "🌨️"},
	80: {Label: "にわか雨 (弱)", Icon: "🌦️"},
	81: {Label: "にわか雨 (中)", Icon: "🌦️"},
	82: {Label: "にわか雨 (強)", Icon: "🌦️"},
	85: {Label: "にわか雪 (弱)", Icon: "🌨️"},
	86: {Label: "にわか雪 (強)", Icon: "🌨️"},
	95: {Label: "雷雨", Icon: "⛈️"},
	96: {Label: "雷雨 (ひょう・弱)", Icon: "⛈️"},
	99: {Label: "雷雨 (ひょう・強)", Icon: "⛈️"},
}

// Lookup returns the table entry for code.
func Lookup(code int) (Entry, bool) {
	entry, ok := codeTable[code]
	return entry, ok
}

// KnownCodes lists every code in the table in ascending order.
func KnownCodes() []int {
	codes := make([]int, 0, len(codeTable))
	for code := range codeTable {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

// Describe translates a WMO code into "<label> <icon>", or just the icon
// when iconOnly is set. Unknown codes keep the raw value in both modes.
func Describe(code int, iconOnly bool) string {
	entry, ok := codeTable[code]
	if !ok {
		if iconOnly {
			return fmt.Sprintf("%s (%d)", unknownIcon, code)
		}
		return fmt.Sprintf("不明 (コード: %d) %s", code, unknownIcon)
	}
	if iconOnly {
		return entry.Icon
	}
	return entry.Label + " " + entry.Icon
}
