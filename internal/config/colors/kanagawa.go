package colors

// kanagawaPalette holds the raw hex values shared by the Wave, Dragon, and
// Lotus presets. Names follow the upstream kanagawa.nvim palette.
type kanagawaPalette struct {
	// Wave backgrounds
	sumiInk1 string
	sumiInk2 string
	sumiInk3 string
	sumiInk4 string
	sumiInk6 string
	waveBlue1 string

	// Wave foregrounds and accents
	fujiWhite   string
	fujiGray    string
	oniViolet   string
	crystalBlue string
	springGreen string
	peachRed    string
	waveAqua2   string

	// Shared diagnostic colors
	dragonBlue   string
	winterBlue   string
	roninYellow  string
	winterYellow string
	samuraiRed   string
	winterRed    string

	// Dragon backgrounds
	dragonBlack1 string
	dragonBlack3 string
	dragonBlack4 string
	dragonBlack6 string

	// Dragon foregrounds and accents
	dragonWhite  string
	dragonAsh    string
	dragonViolet string
	dragonBlue2  string
	dragonGreen2 string
	dragonRed    string
	dragonAqua   string

	// Lotus backgrounds
	lotusWhite0 string
	lotusWhite2 string
	lotusWhite3 string

	// Lotus foregrounds and accents
	lotusInk1    string
	lotusGray3   string
	lotusViolet1 string
	lotusViolet4 string
	lotusBlue4   string
	lotusGreen   string
	lotusRed     string
	lotusOrange  string
	lotusAqua    string
}

var palette = kanagawaPalette{
	sumiInk1:  "#181820",
	sumiInk2:  "#1A1A22",
	sumiInk3:  "#1F1F28",
	sumiInk4:  "#2A2A37",
	sumiInk6:  "#54546D",
	waveBlue1: "#223249",

	fujiWhite:   "#DCD7BA",
	fujiGray:    "#727169",
	oniViolet:   "#957FB8",
	crystalBlue: "#7E9CD8",
	springGreen: "#98BB6C",
	peachRed:    "#FF5D62",
	waveAqua2:   "#7AA89F",

	dragonBlue:   "#658594",
	winterBlue:   "#252535",
	roninYellow:  "#FF9E3B",
	winterYellow: "#49443C",
	samuraiRed:   "#E82424",
	winterRed:    "#43242B",

	dragonBlack1: "#12120F",
	dragonBlack3: "#181616",
	dragonBlack4: "#282727",
	dragonBlack6: "#625E5A",

	dragonWhite:  "#C5C9C5",
	dragonAsh:    "#737C73",
	dragonViolet: "#8992A7",
	dragonBlue2:  "#8BA4B0",
	dragonGreen2: "#87A987",
	dragonRed:    "#C4746E",
	dragonAqua:   "#8EA4A2",

	lotusWhite0: "#D5CEA3",
	lotusWhite2: "#E5DDB0",
	lotusWhite3: "#F2ECBC",

	lotusInk1:    "#545464",
	lotusGray3:   "#8A8980",
	lotusViolet1: "#A09CAC",
	lotusViolet4: "#624C83",
	lotusBlue4:   "#4D699B",
	lotusGreen:   "#6F894E",
	lotusRed:     "#C84053",
	lotusOrange:  "#CC6D00",
	lotusAqua:    "#597B75",
}
