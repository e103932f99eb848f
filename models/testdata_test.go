package models

var testColumns = Columns{
	Name:       "Name",
	X:          "Sp. Def",
	Y:          "Total",
	Primary:    "Type 1",
	Secondary:  "Type 2",
	Generation: "Generation",
	Legendary:  "Legendary",
}

var testHeader = []string{"#", "Name", "Type 1", "Type 2", "Total", "Sp. Def", "Generation", "Legendary"}

// threeRows is the filter example: generations {1,1,2}, legendary {False,True,False}.
var threeRows = [][]string{
	{"1", "Bulbasaur", "Grass", "Poison", "318", "65", "1", "False"},
	{"144", "Articuno", "Ice", "Flying", "580", "125", "1", "True"},
	{"152", "Chikorita", "Grass", "", "318", "65", "2", "False"},
}

var testLayout = Layout{
	Width:          1000,
	Height:         1000,
	PlotLeft:       50,
	PlotRight:      650,
	PlotTop:        50,
	PlotBottom:     650,
	XBuffer:        10,
	YBuffer:        5,
	TickCount:      10,
	PointRadius:    3,
	PointOpacity:   0.6,
	LegendX:        680,
	LegendY:        100,
	LegendSpacing:  25,
	LegendSwatch:   7,
	LegendLabelX:   700,
	LegendLabelDY:  7,
	TooltipOffsetY: -28,
}

func mustDataset(records [][]string) *Dataset {
	d, err := ParseDataset(testHeader, records, testColumns)
	if err != nil {
		panic(err)
	}
	return d
}
