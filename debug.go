// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build debug

package xdd

import (
	"log"
	"os"
)

const debugging bool = true

func init() {
	log.SetOutput(os.Stdout)
}
