// skein - a terminal client for hack.chat
//
// skein connects to a hack.chat server over websocket, renders styled chat
// lines to the terminal, and reads input through an interactive shell.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skeinchat/skein/pkg/ansi"
	"github.com/skeinchat/skein/pkg/client"
	"github.com/skeinchat/skein/pkg/config"
	"github.com/skeinchat/skein/pkg/display"
	skerrors "github.com/skeinchat/skein/pkg/errors"
	"github.com/skeinchat/skein/pkg/protocol"
	"github.com/skeinchat/skein/pkg/session"
	"github.com/skeinchat/skein/pkg/shell"
	"github.com/skeinchat/skein/pkg/spinner"
)

const version = "1.0.0"

func main() {
	configPath := flag.String("config", "", "Config file path (default: skein.yaml or user config dir)")
	nick := flag.String("nick", "", "Nickname (overrides config)")
	channel := flag.String("channel", "", "Channel to join (overrides config)")
	password := flag.String("password", "", "Join password (overrides config)")
	server := flag.String("server", "", "Server websocket URL (overrides config)")
	logFile := flag.String("log", "", "Write debug logs to this file (overrides config)")
	initConfig := flag.Bool("init", false, "Initialize default config file")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("skein %s\n", version)
		os.Exit(0)
	}

	cfgPath := *configPath
	if cfgPath == "" {
		cfgPath = config.DefaultConfigPath()
	}

	if *initConfig {
		if err := config.InitConfig(cfgPath); err != nil {
			fmt.Printf("Failed to initialize config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config initialized at: %s\n", cfgPath)
		fmt.Println("Edit this file to set your nick, channel and colors.")
		os.Exit(0)
	}

	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		fmt.Print(skerrors.ConfigInvalid(cfgPath, err).Display())
		os.Exit(1)
	}
	applyFlagOverrides(cfg, *nick, *channel, *password, *server, *logFile)

	if err := setupLogging(cfg.Session.LogFile); err != nil {
		fmt.Printf("Failed to open log file: %v\n", err)
		os.Exit(1)
	}

	creds := client.Credentials{
		Nick:     cfg.Join.Nick,
		Channel:  cfg.Join.Channel,
		Password: cfg.Join.Password,
	}
	if err := protocol.ValidateNick(creds.Nick); err != nil {
		fmt.Print(skerrors.InvalidNick(creds.Nick, err).Display())
		os.Exit(1)
	}
	if err := protocol.ValidateChannel(creds.Channel); err != nil {
		fmt.Print(skerrors.InvalidChannel(creds.Channel, err).Display())
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	spin := spinner.New(fmt.Sprintf("Connecting to %s", cfg.Server.URL))
	spin.Start()
	conn, err := client.Dial(cfg.Server.URL)
	if err != nil {
		spin.Fail("Connection failed")
		fmt.Print(skerrors.ConnFailed(cfg.Server.URL, err).Display())
		os.Exit(1)
	}
	spin.Success(fmt.Sprintf("Connected to %s", cfg.Server.URL))
	defer conn.Close()

	cl := client.New(conn, creds)
	if cfg.Server.ReconnectWaitMS > 0 {
		cl.ReconnectWait = time.Duration(cfg.Server.ReconnectWaitMS) * time.Millisecond
	}

	chatLog := session.NewLog()
	sh, err := shell.New(cl, chatLog, shell.Config{
		HistoryFile:    cfg.Session.HistoryFile,
		TranscriptFile: cfg.Session.TranscriptFile,
	})
	if err != nil {
		fmt.Printf("Failed to create shell: %v\n", err)
		os.Exit(1)
	}

	disp := display.New(sh.Stdout(), themeFromConfig(cfg), cfg.EscapeTable(), chatLog)
	wireEvents(cl, disp)

	// Reload display settings when the config file changes on disk.
	if _, statErr := os.Stat(cfgPath); statErr == nil {
		watcher, werr := config.Watch(cfgPath, func(updated *config.Config) {
			disp.SetTheme(themeFromConfig(updated))
			disp.SetEscapes(updated.EscapeTable())
		})
		if werr != nil {
			log.Printf("[main] config watch unavailable: %v", werr)
		} else {
			defer watcher.Close()
		}
	}

	if err := cl.Join(); err != nil {
		fmt.Printf("Failed to join %s: %v\n", creds.Channel, err)
		os.Exit(1)
	}

	go func() {
		if err := cl.Run(ctx); err != nil && err != context.Canceled {
			log.Printf("[main] client stopped: %v", err)
		}
	}()

	if err := sh.Run(ctx); err != nil && err != context.Canceled {
		fmt.Printf("Shell error: %v\n", err)
		os.Exit(1)
	}
	cancel()

	if cfg.Session.TranscriptFile != "" && chatLog.Len() > 0 {
		if err := chatLog.SaveTranscript(cfg.Session.TranscriptFile); err != nil {
			fmt.Print(skerrors.TranscriptWrite(cfg.Session.TranscriptFile, err).Display())
		} else {
			fmt.Printf("Transcript saved to %s\n", cfg.Session.TranscriptFile)
		}
	}

	fmt.Println("Goodbye!")
}

// applyFlagOverrides lets command-line flags win over the config file.
func applyFlagOverrides(cfg *config.Config, nick, channel, password, server, logFile string) {
	if nick != "" {
		cfg.Join.Nick = nick
	}
	if channel != "" {
		cfg.Join.Channel = channel
	}
	if password != "" {
		cfg.Join.Password = password
	}
	if server != "" {
		cfg.Server.URL = server
	}
	if logFile != "" {
		cfg.Session.LogFile = logFile
	}
}

// setupLogging routes the standard logger to a file, or discards it so log
// lines cannot tear through the chat area.
func setupLogging(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return nil
}

// themeFromConfig builds the display theme, falling back to defaults for
// colors the config leaves unset.
func themeFromConfig(cfg *config.Config) display.Theme {
	theme := display.DefaultTheme()
	if c, err := ansi.ParseColor(cfg.UI.TripColor); err == nil && cfg.UI.TripColor != "" {
		theme.Trip.FG = c
	}
	if c, err := ansi.ParseColor(cfg.UI.NickColor); err == nil && cfg.UI.NickColor != "" {
		theme.Nick.FG = c
	}
	if c, err := ansi.ParseColor(cfg.UI.ServerColor); err == nil && cfg.UI.ServerColor != "" {
		theme.Server.FG = c
	}
	if c, err := ansi.ParseColor(cfg.UI.WarnColor); err == nil && cfg.UI.WarnColor != "" {
		theme.Warn.FG = c
	}
	return theme
}

// wireEvents connects server events to the display.
func wireEvents(cl *client.Client, disp *display.Display) {
	h := cl.Handlers()
	h.OnChat(func(ev *protocol.ChatEvent) {
		disp.AddMessage(ev.Nick, ev.Trip, ev.Text)
	})
	h.OnInfo(func(ev *protocol.InfoEvent) {
		disp.Info(ev.Text)
	})
	h.OnWarn(func(ev *protocol.WarnEvent) {
		disp.Warn(ev.Text)
	})
	h.OnEmote(func(ev *protocol.EmoteEvent) {
		disp.Emote(ev.Text)
	})
	h.OnInvite(func(ev *protocol.InviteEvent) {
		disp.Info(fmt.Sprintf("You have been invited to ?%s", ev.Channel))
	})
	h.OnCaptcha(func(ev *protocol.CaptchaEvent) {
		disp.Warn("Captcha required:\n" + ev.Text)
	})
	h.OnOnlineSet(func(ev *protocol.OnlineSetEvent) {
		disp.Info(fmt.Sprintf("%d users online", cl.Roster().OnlineCount()))
	})
	h.OnOnlineAdd(func(ev *protocol.OnlineAddEvent) {
		disp.Info(ev.Nick + " joined")
	})
	h.OnOnlineRemove(func(ev *protocol.OnlineRemoveEvent) {
		disp.Info(ev.Nick + " left")
	})
}
