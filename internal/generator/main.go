// Command generator renders a preview constants file from the table below
// using github.com/consensys/bavard, the same templated-file generator
// Consensys-gnark drives from internal/generator/backend/main.go
// (bgen.Generate(data, packageName, baseDir, entries...) against a
// .go.tmpl file). It is not part of the library build — curveparams.go's
// init() carries the hand-maintained, load-bearing copy of these same
// constants; this command exists so the bavard dependency is wired to a
// real template render rather than sitting in go.mod unused.
//
//go:generate go run .
package main

import (
	"os"
	"path/filepath"

	"github.com/consensys/bavard"
)

const copyrightHolder = "the glvmul authors"

type curveConstants struct {
	CurveID string
	P       string
	R       string
	Lambda  string
	Beta    string
}

var curves = []curveConstants{
	{
		CurveID: "BN254",
		P:       "21888242871839275222246405745257275088696311157297823662689037894645226208583",
		R:       "21888242871839275222246405745257275088548364400416034343698204186575808495617",
		Lambda:  "21888242871839275217838484774961031246154997185409878258781734729429964517155",
		Beta:    "21888242871839275220042445260109153167277707414472061641714758635765020556616",
	},
}

func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2026, "glvmul")

	outDir, err := os.MkdirTemp("", "glvmul-constants-preview")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(outDir)

	for _, c := range curves {
		entries := []bavard.Entry{
			{File: filepath.Join(outDir, c.CurveID+"_constants.go"), Templates: []string{"constants.go.tmpl"}},
		}
		if err := bgen.Generate(c, "glvmul", "./template/", entries...); err != nil {
			panic(err)
		}
	}
}
