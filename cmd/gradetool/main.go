package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/josedlhm/svograde"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "grade":
		if err := runGrade(os.Args[2:]); err != nil {
			fail(err)
		}
	case "batch":
		if err := runBatch(os.Args[2:]); err != nil {
			fail(err)
		}
	case "preview":
		if err := runPreview(os.Args[2:]); err != nil {
			fail(err)
		}
	case "defaults":
		if err := runDefaults(); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: gradetool <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  grade    -in frame.png -out graded.png [-params p.json] [-brightness N] [-contrast N] ...")
	fmt.Fprintln(os.Stderr, "  batch    -in session_dir -out graded_dir [-params p.json] [-max N] [-debug]")
	fmt.Fprintln(os.Stderr, "  preview  -in frame.png -out preview.png -maxw W -maxh H [-params p.json]")
	fmt.Fprintln(os.Stderr, "  defaults (print the default settings JSON)")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

func newLogger(debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}

// settingFlags registers one int flag per grading setting, defaulting to
// the documented defaults. Only flags the user actually set override the
// params file.
func settingFlags(fs *flag.FlagSet) map[svograde.Setting]*int {
	def := svograde.DefaultSnapshot()
	flags := map[svograde.Setting]*int{
		svograde.Brightness:              fs.Int("brightness", def.Brightness, "brightness [-100..100]"),
		svograde.Contrast:                fs.Int("contrast", def.Contrast, "contrast [0..100]"),
		svograde.Hue:                     fs.Int("hue", def.Hue, "hue [-90..90]"),
		svograde.Saturation:              fs.Int("saturation", def.Saturation, "saturation [-100..100]"),
		svograde.Sharpness:               fs.Int("sharpness", def.Sharpness, "sharpness [0..60]"),
		svograde.GainSetting:                    fs.Int("gain", def.Gain, "gain [0..100]"),
		svograde.Exposure:                fs.Int("exposure", def.Exposure, "exposure [0..100]"),
		svograde.WhiteBalanceTemperature: fs.Int("wb", def.WhiteBalanceTemperature, "white balance temperature [2000..8000] K"),
	}
	return flags
}

// resolveSnapshot builds the effective snapshot: defaults, then the params
// file when given, then any explicitly set setting flags.
func resolveSnapshot(fs *flag.FlagSet, paramsPath string, flags map[svograde.Setting]*int) (svograde.Snapshot, error) {
	snap := svograde.DefaultSnapshot()
	if paramsPath != "" {
		loaded, err := svograde.LoadSnapshot(paramsPath)
		if err != nil {
			return svograde.Snapshot{}, err
		}
		snap = loaded
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	override := func(flagName string, name svograde.Setting, dst *int) {
		if set[flagName] {
			*dst = *flags[name]
		}
	}
	override("brightness", svograde.Brightness, &snap.Brightness)
	override("contrast", svograde.Contrast, &snap.Contrast)
	override("hue", svograde.Hue, &snap.Hue)
	override("saturation", svograde.Saturation, &snap.Saturation)
	override("sharpness", svograde.Sharpness, &snap.Sharpness)
	override("gain", svograde.GainSetting, &snap.Gain)
	override("exposure", svograde.Exposure, &snap.Exposure)
	override("wb", svograde.WhiteBalanceTemperature, &snap.WhiteBalanceTemperature)
	return snap, nil
}

func runGrade(args []string) error {
	fs := flag.NewFlagSet("grade", flag.ContinueOnError)
	inPath := fs.String("in", "", "input PNG frame")
	outPath := fs.String("out", "", "output PNG frame")
	paramsPath := fs.String("params", "", "settings JSON file")
	flags := settingFlags(fs)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}
	snap, err := resolveSnapshot(fs, *paramsPath, flags)
	if err != nil {
		return err
	}
	return svograde.GradeFile(*inPath, *outPath, snap)
}

func runBatch(args []string) error {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	inDir := fs.String("in", "", "extracted session directory")
	outDir := fs.String("out", "", "output directory")
	paramsPath := fs.String("params", "", "settings JSON file")
	maxFrames := fs.Int("max", 0, "max frames to grade (0 = all)")
	debug := fs.Bool("debug", false, "verbose logging")
	flags := settingFlags(fs)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inDir == "" || *outDir == "" {
		return errors.New("missing required arguments")
	}
	snap, err := resolveSnapshot(fs, *paramsPath, flags)
	if err != nil {
		return err
	}

	logger := newLogger(*debug)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := svograde.GradeDir(ctx, *inDir, *outDir, snap, &svograde.BatchOptions{
		MaxFrames: *maxFrames,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"session": res.SessionID,
		"frames":  res.Frames,
		"out":     *outDir,
	}).Info("done")
	return nil
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	inPath := fs.String("in", "", "input PNG frame")
	outPath := fs.String("out", "", "output PNG preview")
	maxW := fs.Int("maxw", 1280, "max preview width")
	maxH := fs.Int("maxh", 720, "max preview height")
	paramsPath := fs.String("params", "", "settings JSON file")
	flags := settingFlags(fs)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}
	snap, err := resolveSnapshot(fs, *paramsPath, flags)
	if err != nil {
		return err
	}
	return svograde.RenderPreviewFile(*inPath, *outPath, snap, *maxW, *maxH)
}

func runDefaults() error {
	data, err := json.MarshalIndent(svograde.DefaultSnapshot(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
