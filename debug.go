// Copyright (c) 2026 The hashcons authors
//
// MIT License

//go:build debug

package bdd

import (
	"log"
	"os"
)

const _DEBUG bool = true
const _LOGLEVEL int = 1

func init() {
	log.SetOutput(os.Stdout)
}
