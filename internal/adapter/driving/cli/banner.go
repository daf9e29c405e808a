package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/diillson/campus-energy-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         ______                                    ______
        / ____/___ _____ ___  ____  __  _______   / ____/___  ___  _________ ___  __
       / /   / __ ` + "`" + `/ __ ` + "`" + `__ \/ __ \/ / / / ___/  / __/ / __ \/ _ \/ ___/ __ ` + "`" + `/ / / /
      / /___/ /_/ / / / / / / /_/ / /_/ (__  )  / /___/ / / /  __/ /  / /_/ / /_/ /
      \____/\__,_/_/ /_/ /_/ .___/\__,_/____/  /_____/_/ /_/\___/_/   \__, /\__, /
                          /_/                                        /____//____/
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Campus Energy Dashboard CLI (v%s)", formattedVersion)))
}
