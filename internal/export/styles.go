package export

import (
	"dario.cat/mergo"
	"github.com/xuri/excelize/v2"
)

func defaultStyle() *excelize.Style {
	return &excelize.Style{
		// solid white
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#FFFFFF"},
			Pattern: 1,
		},
	}
}

func amountFormat() *excelize.Style {
	format := "#,##0.00"
	return &excelize.Style{
		CustomNumFmt: &format,
	}
}

func fontBold() *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	}
}

func thinBorder(where ...string) *excelize.Style {
	return border(1, where...)
}

func thickBorder(where ...string) *excelize.Style {
	return border(2, where...)
}

func border(weight int, where ...string) *excelize.Style {
	s := &excelize.Style{}
	for _, w := range where {
		s.Border = append(s.Border, excelize.Border{
			Type:  w,
			Color: "#000000",
			Style: weight,
		})
	}
	return s
}

// mergeStyles folds every style into the first one, later ones winning.
func mergeStyles(ext ...*excelize.Style) *excelize.Style {
	if len(ext) == 0 {
		return nil
	}
	for _, e := range ext[1:] {
		_ = mergo.Merge(ext[0], e, mergo.WithOverride)
	}
	return ext[0]
}
