package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/hengadev/envault"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case "keygen":
		keygenCommand(os.Args[2:])
	case "init":
		initCommand(os.Args[2:])
	case "show":
		showCommand(os.Args[2:])
	case "encrypt":
		encryptCommand(os.Args[2:])
	case "decrypt":
		decryptCommand(os.Args[2:])
	case "version":
		versionCommand()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprintf(os.Stderr, "  keygen    Generate random key material\n")
	fmt.Fprintf(os.Stderr, "  init      Write a starter envault.yaml options file\n")
	fmt.Fprintf(os.Stderr, "  show      Print a vault file as JSON, decrypting if configured\n")
	fmt.Fprintf(os.Stderr, "  encrypt   Encrypt a plaintext JSON file\n")
	fmt.Fprintf(os.Stderr, "  decrypt   Decrypt a vault file back to plaintext JSON\n")
	fmt.Fprintf(os.Stderr, "  version   Show version information\n")
	fmt.Fprintf(os.Stderr, "\nEncryption settings come from -config, -env-file, or ENVAULT_* variables.\n")
	fmt.Fprintf(os.Stderr, "Run '%s <command> -h' for help on a specific command.\n", os.Args[0])
}

func keygenCommand(args []string) {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	full := fs.Bool("full", false, "Generate a 32-byte key (AES-256) instead of 16")

	fs.Parse(args)

	key, err := envault.GenerateKeyHex(*full)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate key: %v\n", err)
		os.Exit(1)
	}
	iv, err := envault.GenerateIV()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate IV: %v\n", err)
		os.Exit(1)
	}

	// Printed in dotenv form so the output can be appended to an env file.
	fmt.Printf("%s=%s\n", envault.EnvKey, key)
	fmt.Printf("%s=%s\n", envault.EnvIV, hex.EncodeToString(iv))
}

func initCommand(args []string) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	path := fs.String("path", "envault.yaml", "Where to write the options file")
	force := fs.Bool("force", false, "Overwrite an existing options file")

	fs.Parse(args)

	if !*force {
		if _, err := os.Stat(*path); err == nil {
			fmt.Fprintf(os.Stderr, "Options file %s already exists. Use -force to overwrite.\n", *path)
			os.Exit(1)
		}
	}

	fmt.Printf("Creating options file at %s...\n", *path)

	if err := envault.SaveOptionsFile(envault.DefaultOptionsFile(), *path); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create options file: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Options file created!")
}

func showCommand(args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to an envault.yaml options file")
	envFile := fs.String("env-file", "", "Path to a dotenv file with ENVAULT_* variables")

	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s show [options] <file>\n", os.Args[0])
		os.Exit(1)
	}

	vault := buildVault(*configPath, *envFile)

	var value any
	if err := vault.Load(fs.Arg(0), &value); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load %s: %v\n", fs.Arg(0), err)
		os.Exit(1)
	}

	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(value, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to render %s: %v\n", fs.Arg(0), err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func encryptCommand(args []string) {
	fs := flag.NewFlagSet("encrypt", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to an envault.yaml options file")
	envFile := fs.String("env-file", "", "Path to a dotenv file with ENVAULT_* variables")

	fs.Parse(args)

	if fs.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s encrypt [options] <plaintext-in> <encrypted-out>\n", os.Args[0])
		os.Exit(1)
	}

	reader, err := envault.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build vault: %v\n", err)
		os.Exit(1)
	}

	var value any
	if err := reader.Load(fs.Arg(0), &value); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load %s: %v\n", fs.Arg(0), err)
		os.Exit(1)
	}

	writer := buildVault(*configPath, *envFile)
	if !writer.Encrypted() {
		fmt.Fprintf(os.Stderr, "No key material configured. Run keygen and set %s, or pass -config.\n", envault.EnvKey)
		os.Exit(1)
	}

	if err := writer.Save(fs.Arg(1), value); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save %s: %v\n", fs.Arg(1), err)
		os.Exit(1)
	}

	fmt.Printf("Encrypted %s -> %s\n", fs.Arg(0), fs.Arg(1))
}

func decryptCommand(args []string) {
	fs := flag.NewFlagSet("decrypt", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to an envault.yaml options file")
	envFile := fs.String("env-file", "", "Path to a dotenv file with ENVAULT_* variables")
	pretty := fs.Bool("pretty", true, "Indent the plaintext output")

	fs.Parse(args)

	if fs.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s decrypt [options] <encrypted-in> <plaintext-out>\n", os.Args[0])
		os.Exit(1)
	}

	reader := buildVault(*configPath, *envFile)
	if !reader.Encrypted() {
		fmt.Fprintf(os.Stderr, "No key material configured. Set %s or pass -config.\n", envault.EnvKey)
		os.Exit(1)
	}

	var value any
	if err := reader.Load(fs.Arg(0), &value); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load %s: %v\n", fs.Arg(0), err)
		os.Exit(1)
	}

	var writerOpts []envault.Option
	if *pretty {
		writerOpts = append(writerOpts, envault.WithPrettyPrint())
	}
	writer, err := envault.New(writerOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build vault: %v\n", err)
		os.Exit(1)
	}

	if err := writer.Save(fs.Arg(1), value); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save %s: %v\n", fs.Arg(1), err)
		os.Exit(1)
	}

	fmt.Printf("Decrypted %s -> %s\n", fs.Arg(0), fs.Arg(1))
}

func versionCommand() {
	fmt.Println(envault.VersionInfo())
	fmt.Println("Encrypted JSON file utility")
	fmt.Println("")
	fmt.Println("Supported modes: cbc (default), gcm")
	fmt.Println("Supported codecs: json, cbor, gob")
}

// buildVault resolves options from the first configured source: options
// file, dotenv file, then the process environment.
func buildVault(configPath, envFile string) *envault.Vault {
	opts, err := resolveOptions(configPath, envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resolve options: %v\n", err)
		os.Exit(1)
	}

	vault, err := envault.New(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build vault: %v\n", err)
		os.Exit(1)
	}
	return vault
}

func resolveOptions(configPath, envFile string) ([]envault.Option, error) {
	switch {
	case configPath != "":
		file, err := envault.LoadOptionsFile(configPath)
		if err != nil {
			return nil, err
		}
		return file.Options()
	case envFile != "":
		return envault.OptionsFromEnvFile(envFile)
	default:
		return envault.OptionsFromEnv()
	}
}
