package cli

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/pkgsmith/pkgsmith/internal/language"
	"github.com/pkgsmith/pkgsmith/internal/license"
)

// noLicenseOption is the prompt choice meaning "no license block".
const noLicenseOption = "none"

// promptLanguage interactively asks for the project language.
func promptLanguage() (string, error) {
	var result string
	prompt := &survey.Select{
		Message: "Project language:",
		Options: language.Names(),
		Help:    "The language the project's modules are written in. Native compiled languages get a build-package script body.",
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

// promptLicense interactively asks for the license identifier. Returns an
// empty string when the user picks none.
func promptLicense() (string, error) {
	var result string
	prompt := &survey.Select{
		Message: "License:",
		Options: append([]string{noLicenseOption}, license.IDs()...),
		Default: noLicenseOption,
		Help:    "License attribution block embedded in every generated script header.",
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	if result == noLicenseOption {
		return "", nil
	}
	return result, nil
}
