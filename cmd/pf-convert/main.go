// Command pf-convert rasterizes a TrueType font at a fixed pixel size and
// writes it in the .pf format used by the oled package.
//
//	pf-convert -size 12 DejaVuSansMono
//
// The font argument may be a path to a .ttf file or a bare name, which is
// looked up in the working directory and the system font directories.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/BeatGlow/oled/pf"
)

func main() {
	sizeFlag := flag.Int("size", 12, "Pixel size to rasterize at")
	dpiFlag := flag.Float64("dpi", 72, "Rasterization DPI")
	outFlag := flag.String("o", "", "Output file (default: <font><size>.pf)")
	defaultFlag := flag.String("default", "?", "Default (fallback) character")
	listFlag := flag.Bool("list", false, "List available TrueType fonts and exit")
	flag.Parse()

	if *listFlag {
		for _, name := range listFonts() {
			fmt.Println(name)
		}
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <font name or .ttf path>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	if len(*defaultFlag) != 1 {
		fatal(fmt.Errorf("default character %q is not a single byte", *defaultFlag))
	}

	path, err := findTTF(flag.Arg(0))
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using font: %s\n", path)

	data, err := os.ReadFile(path)
	if err != nil {
		fatal(err)
	}
	ttf, err := freetype.ParseFont(data)
	if err != nil {
		fatal(err)
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    float64(*sizeFlag),
		DPI:     *dpiFlag,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	f, err := pf.FromFace(face, pf.ASCII(), (*defaultFlag)[0])
	if err != nil {
		fatal(err)
	}
	out, err := pf.Encode(f)
	if err != nil {
		fatal(err)
	}

	outFile := *outFlag
	if outFile == "" {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		outFile = fmt.Sprintf("%s%d.pf", stem, *sizeFlag)
	}
	if err = os.WriteFile(outFile, out, 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("font written to %s (%d characters, %d bytes)\n", outFile, f.Len(), len(out))
}

// fontDirs are the common system font locations, checked in order.
func fontDirs() []string {
	dirs := []string{
		"/usr/share/fonts",
		"/usr/local/share/fonts",
		"/System/Library/Fonts",
		"/Library/Fonts",
		"C:/Windows/Fonts",
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".fonts"), filepath.Join(home, "Fonts"))
	}
	return dirs
}

// findTTF resolves a font argument to a .ttf path: as a path, in the
// working directory, then by stem in the system font directories.
func findTTF(name string) (string, error) {
	if strings.EqualFold(filepath.Ext(name), ".ttf") {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}

	if _, err := os.Stat(name + ".ttf"); err == nil {
		return name + ".ttf", nil
	}

	var found string
	for _, dir := range fontDirs() {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil //nolint:nilerr
			}
			if !strings.EqualFold(filepath.Ext(path), ".ttf") {
				return nil
			}
			stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			if strings.EqualFold(stem, name) {
				found = path
				return fs.SkipAll
			}
			return nil
		})
		if err == nil && found != "" {
			return found, nil
		}
	}

	return "", fmt.Errorf("could not find %s.ttf as a path, in the working directory, or in the system font directories", name)
}

// listFonts returns the unique basenames of every TrueType font in the
// working directory and the system font directories.
func listFonts() []string {
	seen := make(map[string]bool)

	collect := func(dir string) {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil //nolint:nilerr
			}
			if strings.EqualFold(filepath.Ext(path), ".ttf") {
				seen[strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))] = true
			}
			return nil
		})
	}

	if cwd, err := os.Getwd(); err == nil {
		collect(cwd)
	}
	for _, dir := range fontDirs() {
		collect(dir)
	}

	fonts := make([]string, 0, len(seen))
	for name := range seen {
		fonts = append(fonts, name)
	}
	sort.Strings(fonts)
	return fonts
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
