package envault

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/hengadev/errsx"
	"github.com/joho/godotenv"
)

// OptionsFromEnv reads Vault options from ENVAULT_* environment variables,
// following the 12-factor style where configuration lives in the
// environment. Unset variables contribute nothing, so the result combines
// freely with explicit options:
//
//	opts, err := envault.OptionsFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vault, err := envault.New(append(opts, envault.WithPrettyPrint())...)
//
// ENVAULT_KEY and ENVAULT_IV hold hex-encoded raw key material and take
// precedence over the passphrase variables. Boolean variables accept the
// values strconv.ParseBool accepts.
func OptionsFromEnv() ([]Option, error) {
	return optionsFromLookup(os.Getenv)
}

// OptionsFromEnvFile reads the same variables as OptionsFromEnv from a
// dotenv file, without touching the process environment.
func OptionsFromEnvFile(path string) ([]Option, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, NewIOError("reading env file", path, err)
	}
	return optionsFromLookup(func(key string) string { return vars[key] })
}

func optionsFromLookup(lookup func(string) string) ([]Option, error) {
	var opts []Option
	errs := errsx.Map{}

	if rawKey := lookup(EnvKey); rawKey != "" {
		key, keyErr := hex.DecodeString(rawKey)
		if keyErr != nil {
			errs.Set(EnvKey, fmt.Errorf("not valid hex: %v", keyErr))
		}
		var iv []byte
		if rawIV := lookup(EnvIV); rawIV != "" {
			parsed, ivErr := hex.DecodeString(rawIV)
			if ivErr != nil {
				errs.Set(EnvIV, fmt.Errorf("not valid hex: %v", ivErr))
			}
			iv = parsed
		}
		if keyErr == nil {
			opts = append(opts, WithEncryptionKey(key, iv))
		}
	} else if passphrase := lookup(EnvPassphrase); passphrase != "" {
		fullStrength := false
		if raw := lookup(EnvFullStrength); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				errs.Set(EnvFullStrength, fmt.Errorf("not a boolean: %v", err))
			}
			fullStrength = parsed
		}
		opts = append(opts, WithPassphrase(passphrase, lookup(EnvIVPassphrase), fullStrength))
	}

	if raw := lookup(EnvMode); raw != "" {
		mode, err := ParseMode(raw)
		if err != nil {
			errs.Set(EnvMode, err)
		} else {
			opts = append(opts, WithMode(mode))
		}
	}

	flags := []struct {
		key    string
		option Option
	}{
		{EnvPretty, WithPrettyPrint()},
		{EnvOnlyTagged, WithOnlyTaggedFields()},
		{EnvCaseSensitive, WithCaseSensitiveFields()},
		{EnvOmitReadOnly, WithOmitReadOnlyFields()},
	}
	for _, f := range flags {
		raw := lookup(f.key)
		if raw == "" {
			continue
		}
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			errs.Set(f.key, fmt.Errorf("not a boolean: %v", err))
			continue
		}
		if enabled {
			opts = append(opts, f.option)
		}
	}

	if err := errs.AsError(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return opts, nil
}
