package ddplot

// Theme bundles the fixed aesthetics of a DD-plot.
type Theme struct {
	PointStyle, GuideStyle AesMapping
}

// DefaultTheme is the classical DD-plot look: plain dark points and a
// thin gray diagonal guide.
var DefaultTheme = Theme{
	PointStyle: AesMapping{
		"size":  "2",
		"shape": "circle",
		"color": "#222222",
		"alpha": "1",
	},
	GuideStyle: AesMapping{
		"size":  "0.35",
		"color": "gray",
		"alpha": "1",
	},
}
