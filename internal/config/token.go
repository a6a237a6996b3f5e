package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// SeedTokenKey is the env-file key holding the CMS API token
const SeedTokenKey = "SEED_TOKEN"

// ErrNoSeedToken is returned when no usable SEED_TOKEN could be found
var ErrNoSeedToken = errors.New("no SEED_TOKEN found")

// ParseSeedToken extracts SEED_TOKEN from the contents of an env file.
// When other lines are not valid dotenv syntax only the SEED_TOKEN= line is
// parsed.
func ParseSeedToken(blob string) (string, error) {
	values, err := godotenv.Unmarshal(blob)
	if err != nil {
		line, ok := seedTokenLine(blob)
		if !ok {
			return "", fmt.Errorf("%w: parse env file: %v", ErrNoSeedToken, err)
		}
		if values, err = godotenv.Unmarshal(line); err != nil {
			return "", fmt.Errorf("parse %s line: %w", SeedTokenKey, err)
		}
	}
	token := values[SeedTokenKey]
	if token == "" {
		return "", ErrNoSeedToken
	}
	return token, nil
}

// seedTokenLine returns the first line starting with SEED_TOKEN=
func seedTokenLine(blob string) (string, bool) {
	for _, line := range strings.Split(blob, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, SeedTokenKey+"=") {
			return line, true
		}
	}
	return "", false
}

// LoadSeedToken returns the CMS token. A SEED_TOKEN variable in the process
// environment wins; otherwise the env file at path is read. An unreadable
// file is treated the same as a file without the key.
func LoadSeedToken(path string) (string, error) {
	if token := os.Getenv(SeedTokenKey); token != "" {
		return token, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w in %s: %v", ErrNoSeedToken, path, err)
	}

	token, err := ParseSeedToken(string(data))
	if err != nil {
		if errors.Is(err, ErrNoSeedToken) {
			return "", fmt.Errorf("%w in %s", ErrNoSeedToken, path)
		}
		return "", err
	}
	return token, nil
}
