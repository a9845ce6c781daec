package web

import "embed"

// PagesFS embeds the HTML pages served directly by the router.
//
//go:embed pages/*.html
var PagesFS embed.FS

// StaticFS embeds static assets (css).
//
//go:embed static/*
var StaticFS embed.FS
