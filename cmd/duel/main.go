package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/wizbiz/wizardduel/internal/battle"
	"github.com/wizbiz/wizardduel/internal/command"
	"github.com/wizbiz/wizardduel/internal/config"
	"github.com/wizbiz/wizardduel/internal/customization"
	"github.com/wizbiz/wizardduel/internal/dice"
	"github.com/wizbiz/wizardduel/internal/help"
	"github.com/wizbiz/wizardduel/internal/logger"
	"github.com/wizbiz/wizardduel/internal/namefilter"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run plays duels until the player quits or input ends and returns the
// process exit code. Every return path after the logger starts closes it.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Parse command-line flags
	fs := flag.NewFlagSet("duel", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "data/duel.yaml", "Path to duel config YAML file")
	loggingConfig := fs.String("logging", "", "Path to logging config YAML file (default: files.logging from the duel config)")
	nameFilterConfig := fs.String("namefilter", "", "Path to name filter config YAML file (default: files.name_filter from the duel config)")
	helpFile := fs.String("helpfile", "", "Path to help text YAML file (default: files.help from the duel config)")
	seed := fs.Int64("seed", 0, "Random seed (default: from the duel config, else time based)")
	name := fs.String("name", customization.DefaultName, "Your wizard's name")
	face := fs.String("face", string(customization.WiseElder), "Face: "+optionList(customization.Faces))
	hat := fs.String("hat", string(customization.PointyHat), "Hat: "+optionList(customization.Hats))
	robe := fs.String("robe", string(customization.Blue), "Robe colour: "+optionList(customization.Robes))
	staff := fs.String("staff", string(customization.WoodenStaff), "Staff: "+optionList(customization.Staffs))
	verbose := fs.Bool("verbose", false, "Also print diagnostics to the terminal")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, cfgErr := config.LoadConfig(*configFile)

	// Initialize logger first (before any logging). The terminal belongs to
	// the duel, so diagnostics go to the log file unless -verbose is set.
	logConfig, logErr := logger.LoadConfig(firstNonEmpty(*loggingConfig, cfg.Files.Logging, "data/logging.yaml"))
	logConfig.ConsoleEnabled = *verbose
	if err := logger.Initialize(logConfig); err != nil {
		fmt.Fprintf(stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	if logErr != nil {
		logger.Warning("Failed to load logging config, using defaults", "error", logErr)
	}
	if cfgErr != nil {
		logger.Warning("Failed to load duel config, using defaults", "path", *configFile, "error", cfgErr)
	}

	reg, err := cfg.LoadRegistry()
	if err != nil {
		logger.Error("Failed to load spells", "error", err)
		fmt.Fprintf(stderr, "Failed to load spells: %v\n", err)
		return 1
	}
	logger.Info("Spells loaded", "count", reg.Len())

	var nf *namefilter.NameFilter
	if nfCfg, err := namefilter.LoadConfig(firstNonEmpty(*nameFilterConfig, cfg.Files.NameFilter, "data/name_filter.yaml")); err != nil {
		logger.Warning("Failed to load name filter config, using shape rules only", "error", err)
	} else {
		nf = namefilter.New(nfCfg)
	}

	player, err := buildPlayer(*name, *face, *hat, *robe, *staff, nf)
	if err != nil {
		logger.Warning("Rejected wizard", "name", *name, "error", err)
		fmt.Fprintln(stderr, err)
		return 2
	}

	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger.Info("Seed selected", "seed", cfg.Seed)

	ctrl := battle.New(cfg.BattleOptions(reg))
	ctrl.AddObserver(command.NewPrinter(stdout, ctrl))

	session := command.NewSession(ctrl, reg, cfg.DeckProfile(reg), player, dice.New(cfg.Seed).Derive())
	if path := firstNonEmpty(*helpFile, cfg.Files.Help); path != "" {
		if h, err := help.Load(path); err != nil {
			logger.Warning("Failed to load help text, using built-in help", "error", err)
		} else {
			session.SetHelp(h)
		}
	}

	fmt.Fprintf(stdout, "You are %s.\n", player.Describe())
	fmt.Fprintln(stdout, "Type 'help' for commands.")
	if err := session.Next(); err != nil {
		logger.Error("Failed to start duel", "error", err)
		fmt.Fprintf(stderr, "Failed to start duel: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "Your opponent is %s.\n", session.Enemy().Describe())

	runLoop(session, stdin, stdout)
	logger.Info("Session ended", "difficulty", ctrl.Difficulty(), "win_streak", ctrl.WinStreak())
	return 0
}

func runLoop(session *command.Session, stdin io.Reader, stdout io.Writer) {
	scanner := bufio.NewScanner(stdin)
	for !session.Done() {
		fmt.Fprint(stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(stdout)
			break
		}
		before := session.Enemy()
		reply := session.Handle(scanner.Text())
		if reply != "" {
			fmt.Fprintln(stdout, reply)
		}
		if enemy := session.Enemy(); enemy != before {
			fmt.Fprintf(stdout, "Your opponent is %s.\n", enemy.Describe())
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error("Failed to read input", "error", err)
	}
}

func buildPlayer(name, face, hat, robe, staff string, nf *namefilter.NameFilter) (customization.Wizard, error) {
	f, err := customization.ParseFace(face)
	if err != nil {
		return customization.Wizard{}, err
	}
	h, err := customization.ParseHat(hat)
	if err != nil {
		return customization.Wizard{}, err
	}
	r, err := customization.ParseRobe(robe)
	if err != nil {
		return customization.Wizard{}, err
	}
	s, err := customization.ParseStaff(staff)
	if err != nil {
		return customization.Wizard{}, err
	}
	return customization.NewPlayer(name, f, h, r, s, nf)
}

func optionList[T ~string](options []T) string {
	names := make([]string, len(options))
	for i, o := range options {
		names[i] = string(o)
	}
	return strings.Join(names, ", ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
