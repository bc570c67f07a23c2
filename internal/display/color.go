package display

import "strings"

var teamColorByCode = map[string]string{
	"SSG": "#fc1c3d",
	"WO":  "#6b0012",
	"LG":  "#c30036",
	"KT":  "#070707",
	"NC":  "#002c6a",
	"HT":  "#b50f22",
	"SS":  "#005bac",
	"LT":  "#002857",
	"OB":  "#0f0c29",
	"HH":  "#ed7100",
}

var teamColorByName = map[string]string{
	"SSG 랜더스":  "#fc1c3d",
	"키움 히어로즈": "#6b0012",
	"LG 트윈스":   "#c30036",
	"KT 위즈":    "#070707",
	"NC 다이노스":  "#002c6a",
	"KIA 타이거즈": "#b50f22",
	"삼성 라이온즈": "#005bac",
	"롯데 자이언츠": "#002857",
	"두산 베어스":  "#0f0c29",
	"한화 이글스":  "#ed7100",
}

// TeamAccentColor looks a team colour up by short code first, then by full
// name. ok is false when neither is known.
func TeamAccentColor(code, name string) (color string, ok bool) {
	if c, found := teamColorByCode[strings.ToUpper(strings.TrimSpace(code))]; found {
		return c, true
	}
	if c, found := teamColorByName[strings.TrimSpace(name)]; found {
		return c, true
	}
	return "", false
}
