package config

import "time"

const (
	WindowWidth  = 640
	WindowHeight = 640

	// SampleInterval is the cadence at which the demo polls its value
	// source; the spring animates the hand between samples.
	SampleInterval  = 200 * time.Millisecond
	SmoothingFactor = 0.6

	// Demo dial: a 0–60 speedometer-style scale, major marks every 10
	// with four minor marks in between.
	DialMin          = 0
	DialMax          = 60
	DialMajorStep    = 10
	DialSubdivisions = 5

	// Redline parameters
	DefaultRedline = 50.0
	AlarmFrequency = 880
)
