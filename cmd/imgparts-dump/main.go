package main

import (
	"flag"
	"fmt"
	"os"

	"imgparts"
	"imgparts/internal/output"
)

var (
	inputFilename string
	iccOutPath    string
	exifOutPath   string
)

func dumpFile(fileName string) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		fmt.Println("Error reading file:", err)
		return
	}

	img, err := imgparts.Read(data)
	if err != nil {
		fmt.Println("Error parsing file:", err)
		return
	}

	output.PrintHeader(false, "%s (%s)", fileName, img.Format())

	profile := img.ICCProfile()
	if profile == nil {
		output.Println(true, "No ICC profile")
	} else {
		output.PrintForm(true, "ICC profile", fmt.Sprintf("%d bytes", len(profile)), 13)
		if iccOutPath != "" {
			if err := os.WriteFile(iccOutPath, profile, 0o644); err != nil {
				fmt.Println("Error writing ICC profile:", err)
			} else {
				output.PrintForm(true, "ICC written to", iccOutPath, 13)
			}
		}
	}

	exif := img.EXIF()
	if exif == nil {
		output.Println(true, "No EXIF payload")
	} else {
		output.PrintForm(true, "EXIF payload", fmt.Sprintf("%d bytes", len(exif)), 13)
		if exifOutPath != "" {
			if err := os.WriteFile(exifOutPath, exif, 0o644); err != nil {
				fmt.Println("Error writing EXIF payload:", err)
			} else {
				output.PrintForm(true, "EXIF written to", exifOutPath, 13)
			}
		}
	}
}

func main() {
	output.Setup()
	flag.StringVar(&inputFilename, "f", "", "Input filename")
	flag.StringVar(&iccOutPath, "icc-out", "", "Optional path to write the extracted ICC profile to")
	flag.StringVar(&exifOutPath, "exif-out", "", "Optional path to write the extracted EXIF payload to")
	flag.Parse()

	if inputFilename == "" {
		fmt.Println("Invalid input filename")
		flag.PrintDefaults()
		return
	}

	dumpFile(inputFilename)
}
