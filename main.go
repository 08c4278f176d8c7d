package main

import (
	"github.com/umn-libraries/drumcurate/cmd"

	// Register format plugins
	_ "github.com/umn-libraries/drumcurate/format/curationlog"
	_ "github.com/umn-libraries/drumcurate/format/datacite"
	_ "github.com/umn-libraries/drumcurate/format/readme"
	_ "github.com/umn-libraries/drumcurate/format/summary"
)

func main() {
	cmd.Execute()
}
