// Package main is a tool for inspecting camera model parameter files and
// rescaling them to a new viewport.
package main

import (
	"flag"
	"os"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/camera"
)

var logger = golog.NewDevelopmentLogger("cameraparams")

func main() {
	if err := realMain(os.Args[1:]); err != nil {
		logger.Fatal(err)
	}
}

func realMain(args []string) error {
	flags := flag.NewFlagSet("cameraparams", flag.ContinueOnError)
	inFile := flags.String("in", "", "JSON camera parameters file to read")
	outFile := flags.String("out", "", "optional destination for the parameters after rescaling")
	newWidth := flags.Float64("width", 0, "new viewport width in pixels")
	newHeight := flags.Float64("height", 0, "new viewport height in pixels")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *inFile == "" {
		return errors.New("cameraparams needs -in <parameters.json>")
	}

	params, err := camera.NewParametersFromJSONFile(*inFile)
	if err != nil {
		return err
	}
	if err := camera.CheckValid[float64](params); err != nil {
		return err
	}
	logger.Infof("loaded %s", params)

	model := camera.NewModel(params)
	logger.Infof("camera matrix:\n%v", mat.Formatted(model.CameraMatrix()))

	if *newWidth > 0 && *newHeight > 0 {
		camera.ResizeViewport[float64](params, *newWidth, *newHeight)
		logger.Infof("rescaled to %s", params)
	}

	if *outFile != "" {
		if err := camera.WriteToJSONFile[float64](params, *outFile); err != nil {
			return err
		}
		logger.Infof("wrote %s", *outFile)
	}
	return nil
}
