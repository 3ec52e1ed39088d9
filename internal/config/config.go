package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Timesheet Timesheet `koanf:"timesheet"`
	Style     Style     `koanf:"style"`
}

type Timesheet struct {
	FileName  string `koanf:"filename"`
	SheetName string `koanf:"sheetname"`
}

type Style struct {
	FontFamily    string  `koanf:"fontfamily"`
	FontSize      float64 `koanf:"fontsize"`
	ColumnPadding int     `koanf:"columnpadding"`
}

// Load reads configuration in layers: struct defaults, then an optional YAML
// file at path, then STEMPEL_-prefixed environment variables.
func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Timesheet: Timesheet{
			FileName:  "timesheet.xlsx",
			SheetName: "Timesheet",
		},
		Style: Style{
			FontFamily:    "Times New Roman",
			FontSize:      12,
			ColumnPadding: 2,
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "STEMPEL_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "STEMPEL_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
