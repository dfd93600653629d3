// Copyright (c) 2026 The hashcons authors
//
// MIT License

//go:build !debug

package bdd

const _DEBUG bool = false
const _LOGLEVEL int = 0
