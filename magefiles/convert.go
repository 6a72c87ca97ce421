//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Convert builds nb2hugo and converts the notebook named by $NOTEBOOK.
func Convert() error {
	mg.Deps(Build, Init)

	nb := os.Getenv("NOTEBOOK")
	if nb == "" {
		return fmt.Errorf("set NOTEBOOK to the .ipynb file to convert")
	}
	return sh.RunV(filepath.Join(binDir, binName), "convert", nb)
}
