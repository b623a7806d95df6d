// Package constants defines shared constants and types used throughout the
// steps packages.
package constants

import (
	"os"
	"time"
)

// Environment variables read by hosts built on steps.
const (
	LogLevelEnvVar = "STEPS_LOG_LEVEL" // Overrides the configured log level
	LocaleEnvVar   = "STEPS_LOCALE"    // Overrides the configured locale
	LogPathEnvVar  = "STEPS_LOG_PATH"  // Overrides the configured log file path
)

// EnvOr returns the value of the environment variable key, or fallback when
// it is unset or empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonSelect
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	default:
		return "Unknown"
	}
}

// Default input repeat timing.
const (
	DefaultRepeatDelay    = 300 * time.Millisecond // Hold time before the first repeat
	DefaultRepeatInterval = 150 * time.Millisecond // Time between subsequent repeats
)
