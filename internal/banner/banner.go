package banner

import (
	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
)

func PrintBanner() {
	myFigure := figure.NewColorFigure("JUDOLCHK", "doom", "red", true)
	myFigure.Print()

	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)

	_, _ = cyan.Println("════════════════════════════════════════════════")
	_, _ = green.Println("    Sitemap Defacement Checker | https://github.com/alpallel")
	_, _ = cyan.Println("════════════════════════════════════════════════")
}
