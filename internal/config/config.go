// Package config resolves runtime settings from a .env file, an optional
// YAML file and environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

const (
	DefaultURL        = "https://www.gov.br/ans/pt-br/acesso-a-informacao/participacao-da-sociedade/atualizacao-do-rol-de-procedimentos"
	DefaultFilter     = "ANEXO"
	DefaultZipName    = "pdfs_compactados.zip"
	DefaultCSVZipName = "Anexo_I_Rol.zip"
	DefaultPDFDir     = "data/pdfs"
	DefaultCSVDir     = "data/csv"
	DefaultPages      = "3-181"
	DefaultTimeout    = 10 * time.Second
)

// Config is the resolved, immutable configuration of one process.
type Config struct {
	URL           string            `yaml:"url"`
	Filter        string            `yaml:"filter"`
	ZipName       string            `yaml:"zip_name"`
	PDFDir        string            `yaml:"pdf_dir"`
	CSVDir        string            `yaml:"csv_dir"`
	CSVZipName    string            `yaml:"csv_zip_name"`
	TargetPDF     string            `yaml:"target_pdf"`
	TablePages    string            `yaml:"table_pages"`
	TabulaJar     string            `yaml:"tabula_jar"`
	HTTPTimeout   time.Duration     `yaml:"http_timeout"`
	Abbreviations map[string]string `yaml:"abbreviations"`
	Log           Logging           `yaml:"log"`
}

// Logging holds logger settings.
type Logging struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
	File   string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		URL:         DefaultURL,
		Filter:      DefaultFilter,
		ZipName:     DefaultZipName,
		PDFDir:      DefaultPDFDir,
		CSVDir:      DefaultCSVDir,
		CSVZipName:  DefaultCSVZipName,
		TablePages:  DefaultPages,
		HTTPTimeout: DefaultTimeout,
		Abbreviations: map[string]string{
			"OD":  "Seg. Odontológica",
			"AMB": "Seg. Ambulatorial",
		},
		Log: Logging{Level: "info", Format: "text"},
	}
}

// Load builds a Config. configFile may be empty, in which case CONFIG_FILE
// is consulted; a missing .env file is not an error.
func Load(configFile string) (*Config, error) {
	if err := loadEnvFile(".env"); err != nil {
		return nil, err
	}

	cfg := Default()

	if configFile == "" {
		configFile = GetEnv("CONFIG_FILE", "")
	}
	if configFile != "" {
		if err := cfg.mergeFile(configFile); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return goerr.Wrap(err, "failed to load env file", goerr.V("path", path))
	}
	return nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return goerr.Wrap(err, "failed to parse config file", goerr.V("path", path))
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.URL = GetEnv("URL", c.URL)
	c.Filter = GetEnv("FILTER", c.Filter)
	c.ZipName = GetEnv("ZIP_NAME", c.ZipName)
	c.PDFDir = GetEnv("PDF_DIR", c.PDFDir)
	c.CSVDir = GetEnv("CSV_DIR", c.CSVDir)
	c.CSVZipName = GetEnv("CSV_ZIP_NAME", c.CSVZipName)
	c.TargetPDF = GetEnv("TARGET_PDF", c.TargetPDF)
	c.TablePages = GetEnv("TABLE_PAGES", c.TablePages)
	c.TabulaJar = GetEnv("TABULA_JAR", c.TabulaJar)
	c.Log.Level = GetEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = GetEnv("LOG_FORMAT", c.Log.Format)
	c.Log.File = GetEnv("LOG_FILE", c.Log.File)

	timeout, err := GetEnvDuration("HTTP_TIMEOUT", c.HTTPTimeout)
	if err != nil {
		return err
	}
	c.HTTPTimeout = timeout
	return nil
}

// Validate checks that the configuration can drive a pipeline run.
func (c *Config) Validate() error {
	u, err := url.Parse(c.URL)
	if err != nil {
		return goerr.Wrap(err, "invalid URL", goerr.V("url", c.URL))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return goerr.New("URL must use http or https", goerr.V("url", c.URL))
	}

	var errs []error
	if c.ZipName == "" {
		errs = append(errs, errors.New("ZIP_NAME is empty"))
	}
	if c.PDFDir == "" {
		errs = append(errs, errors.New("PDF_DIR is empty"))
	}
	if c.CSVDir == "" {
		errs = append(errs, errors.New("CSV_DIR is empty"))
	}
	if c.HTTPTimeout <= 0 {
		errs = append(errs, errors.New("HTTP_TIMEOUT must be positive"))
	}
	if err := errors.Join(errs...); err != nil {
		return goerr.Wrap(err, "invalid configuration")
	}
	return nil
}

// EnsureDirectories creates the PDF and CSV directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.PDFDir, c.CSVDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return goerr.Wrap(err, "failed to create directory", goerr.V("dir", dir))
		}
	}
	return nil
}
