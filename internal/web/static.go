package web

import (
	"embed"
)

// static holds the embedded HTML for the chart viewer page.
//
//go:embed static/*
var staticFiles embed.FS
