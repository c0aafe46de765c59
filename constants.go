package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeNumberInput
	ModeConfirm
)

type Setting int

const (
	SettingLines Setting = iota
	SettingPoints
	SettingSpacing
)

type ConfirmAction int

const (
	ConfirmOverwriteSVG ConfirmAction = iota
	ConfirmOverwritePNG
	ConfirmQuit
)

const (
	defaultNumLines  = 10
	defaultNumPoints = 5
	defaultSpacing   = 20
	defaultHitRadius = 10.0
	markerRadius     = 4.0

	// Canvas pixels per terminal cell.
	cellWidth  = 8.0
	cellHeight = 16.0

	exportFilenameSVG  = "parallel-lines.svg"
	exportFilenamePNG  = "parallel-lines.png"
	exportFilenameText = "parallel-lines.txt"
	svgMIMEType        = "image/svg+xml"
)
