//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary      = "fsutil"
	mainPackage = "./cmd/fsutil"
	coverFile   = "coverage.out"
)

// Default target to run when none is specified
var Default = Build

// Build compiles the fsutil command into the repository root
func Build() error {
	fmt.Println("Building", binary+"...")
	return sh.RunV("go", "build", "-o", binary, mainPackage)
}

// Install installs fsutil into GOBIN
func Install() error {
	fmt.Println("Installing", binary+"...")
	return sh.RunV("go", "install", mainPackage)
}

// Test runs the package tests with the race detector
func Test() error {
	fmt.Println("Running tests...")
	return sh.RunV("go", "test", "-race", "-shuffle=on", "-coverprofile="+coverFile, "./...")
}

// TestIntegration runs the end-to-end command tests
func TestIntegration() error {
	fmt.Println("Running integration tests...")
	return sh.RunV("go", "test", "-tags", "integration", "-count=1", "./tests/...")
}

// Lint runs golangci-lint
func Lint() error {
	fmt.Println("Linting...")
	return sh.RunV("golangci-lint", "run", "./...")
}

// Fmt formats the code
func Fmt() error {
	fmt.Println("Formatting code...")
	return sh.RunV("gofmt", "-s", "-w", ".")
}

// Check formats, lints and runs every test suite
func Check() {
	mg.SerialDeps(Fmt, Lint, Test, TestIntegration)
}

// Coverage writes an HTML coverage report
func Coverage() error {
	mg.Deps(Test)
	fmt.Println("Generating coverage report...")
	return sh.RunV("go", "tool", "cover", "-html="+coverFile, "-o", "coverage.html")
}

// Clean removes build artifacts
func Clean() {
	fmt.Println("Cleaning...")
	for _, artifact := range []string{binary, coverFile, "coverage.html"} {
		_ = os.Remove(artifact)
	}
}
