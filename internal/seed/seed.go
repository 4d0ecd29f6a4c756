// Package seed derives random seeds so that lillib runs can be reproduced.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"
)

// Mode determines how the random seed is generated.
type Mode string

const (
	// ModeRandom uses a non-deterministic seed (varies each run, default).
	ModeRandom Mode = "random"
	// ModeContent derives the seed from a hash of the command input.
	ModeContent Mode = "content"
	// ModeManual uses a user-provided seed value.
	ModeManual Mode = "manual"
)

// Config holds configuration for seed generation.
type Config struct {
	Mode  Mode   // Seed mode
	Value *int64 // Seed value (only used when Mode is ModeManual)
}

// Calculate determines the seed value based on the seed mode.
// content is the input hashed in ModeContent; it may be empty.
func Calculate(content []string, config Config) (int64, error) {
	switch config.Mode {
	case ModeContent:
		return ContentSeed(content), nil
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeRandom, "":
		return GenerateRandomSeed(), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// ContentSeed hashes the given values into a deterministic seed.
// Each value is length-prefixed so that ["ab", "c"] and ["a", "bc"] differ.
func ContentSeed(content []string) int64 {
	hasher := sha256.New()
	lenBytes := make([]byte, 8)
	for _, s := range content {
		binary.LittleEndian.PutUint64(lenBytes, uint64(len(s)))
		hasher.Write(lenBytes)
		hasher.Write([]byte(s))
	}
	hash := hasher.Sum(nil)
	return int64(binary.LittleEndian.Uint64(hash[:8])) // #nosec G115 -- hash conversion is safe
}

// GenerateRandomSeed generates a non-deterministic random seed.
func GenerateRandomSeed() int64 {
	// #nosec G404 -- Random seed generation is intentionally non-deterministic
	return time.Now().UnixNano() + rand.Int64N(1000000)
}

// ValidModes returns a list of valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeRandom, ModeContent, ModeManual}
}

// ParseMode converts a string to a Mode.
// Returns an error if the string is not a valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: random, content, manual)", s)
}
