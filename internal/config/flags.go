package config

// This file implements CLI flag parsing and help text.
// Flags are captured into cliFlags first so the config file and environment
// can be layered underneath; only flags the user actually passed are copied
// into Config afterwards (see fs.Visit in applyFlags).

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// checkUsage describes --check in both the flag set and printUsage.
const checkUsage = "Report names, photos and counts without renaming"

// cliFlags holds raw flag values before they are layered onto Config.
type cliFlags struct {
	photoFolder  string
	outputFolder string
	namesFile    string
	groupsFile   string
	extensions   string
	logFile      string
	configFile   string
	envFile      string
	verbose      bool
	forceColor   bool
	noColor      bool
	checkOnly    bool
	showVersion  bool
	showHelp     bool
}

// ParseFlags parses args (without the program name) into cfg. Layering is
// defaults (already in cfg) < YAML config < environment < flags < positional
// args. On --help or --version it prints and exits.
func ParseFlags(cfg *Config, args []string, version string) error {
	fs := flag.NewFlagSet("picnamer", flag.ContinueOnError)
	fs.Usage = func() { printUsage(version) }

	var cli cliFlags
	definePathFlags(fs, &cli)
	defineDisplayFlags(fs, &cli)
	defineUtilityFlags(fs, &cli)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cli.showHelp {
		printUsage(version)
		os.Exit(0)
	}
	if cli.showVersion {
		fmt.Fprintln(os.Stdout, "picnamer v"+version)
		os.Exit(0)
	}

	if err := LoadDotEnv(cli.envFile); err != nil {
		return err
	}

	configFile := cli.configFile
	if configFile == "" {
		configFile = strings.TrimSpace(os.Getenv(EnvPrefix + "CONFIG"))
	}
	if configFile != "" {
		if err := cfg.ApplyFile(configFile); err != nil {
			return err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}

	applyFlags(fs, cfg, &cli)
	return parsePositionalArgs(fs, cfg)
}

// definePathFlags registers the folder, file and extension flags.
func definePathFlags(fs *flag.FlagSet, cli *cliFlags) {
	fs.StringVar(&cli.photoFolder, "photos", "", "Folder containing the photos to rename")
	fs.StringVar(&cli.photoFolder, "p", "", "Same as --photos")
	fs.StringVar(&cli.outputFolder, "output", "", "Folder the renamed photos are moved to")
	fs.StringVar(&cli.outputFolder, "o", "", "Same as --output")
	fs.StringVar(&cli.namesFile, "names", "", "CSV or XLSX file with group,name rows")
	fs.StringVar(&cli.namesFile, "n", "", "Same as --names")
	fs.StringVar(&cli.groupsFile, "groups", "", "JSON file the grouping is written to")
	fs.StringVar(&cli.groupsFile, "g", "", "Same as --groups")
	fs.StringVar(&cli.extensions, "ext", "", "Comma-separated photo extensions")
	fs.StringVar(&cli.extensions, "e", "", "Same as --ext")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cli *cliFlags) {
	fs.BoolVar(&cli.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&cli.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cli.verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cli.verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cli.checkOnly, "check", false, checkUsage)
	fs.BoolVar(&cli.checkOnly, "c", false, "Same as --check")
	fs.StringVar(&cli.logFile, "log", "", "Append logs to file")
	fs.StringVar(&cli.logFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --config, --env-file, --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, cli *cliFlags) {
	fs.StringVar(&cli.configFile, "config", "", "YAML config file")
	fs.StringVar(&cli.envFile, "env-file", "", "Load environment from this file instead of ./.env")
	fs.BoolVar(&cli.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&cli.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&cli.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&cli.showHelp, "h", false, "Same as --help")
}

// applyFlags copies the flags that were set on the command line into cfg.
func applyFlags(fs *flag.FlagSet, cfg *Config, cli *cliFlags) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "photos", "p":
			cfg.PhotoFolder = NormalizeDirArg(cli.photoFolder)
		case "output", "o":
			cfg.OutputFolder = NormalizeDirArg(cli.outputFolder)
		case "names", "n":
			cfg.NamesFile = cli.namesFile
		case "groups", "g":
			cfg.GroupsFile = cli.groupsFile
		case "ext", "e":
			cfg.AllowedExtensions = ParseExtensionList(cli.extensions)
		case "log", "l":
			cfg.LogFile = cli.logFile
		case "verbose", "v":
			cfg.Verbose = cli.verbose
		case "check", "c":
			cfg.CheckOnly = cli.checkOnly
		}
	})
	if cli.noColor {
		cfg.ColorMode = ColorNever
	} else if cli.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets NamesFile, PhotoFolder and OutputFolder from up
// to three optional positional args, in that order.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if len(args) > 3 {
		return fmt.Errorf("too many arguments (want at most names_file photo_folder output_folder, got %d)", len(args))
	}
	if len(args) > 0 {
		cfg.NamesFile = args[0]
	}
	if len(args) > 1 {
		cfg.PhotoFolder = NormalizeDirArg(args[1])
	}
	if len(args) > 2 {
		cfg.OutputFolder = NormalizeDirArg(args[2])
	}
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "picnamer v" + version + " - rename photos from a grouped names list"},
		{"", ""},
		{"  picnamer [OPTIONS] [names_file [photo_folder [output_folder]]]", ""},
		{"", ""},
		{"Paths", ""},
		{"  -n, --names <path>", "CSV/XLSX with group,name rows (default: names.csv)"},
		{"  -p, --photos <dir>", "Photo folder (default: photos)"},
		{"  -o, --output <dir>", "Output folder, created if missing (default: output)"},
		{"  -g, --groups <path>", "Grouping JSON sidecar (default: output.json)"},
		{"  -e, --ext <list>", "Photo extensions (default: .jpg,.jpeg,.png,.cr2)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  --config <path>", "YAML config file (or " + EnvPrefix + "CONFIG)"},
		{"  --env-file <path>", "Environment file (default: ./.env if present)"},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", checkUsage},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
