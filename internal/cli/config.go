package cli

import (
	"bytes"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"drach/internal/output"
)

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

// EnvLookup layers the process environment over the variables of a dotenv
// file. A missing file is not an error.
func EnvLookup(dotenvPath string) (LookupFunc, error) {
	vars := map[string]string{}
	if dotenvPath != "" {
		m, err := godotenv.Read(dotenvPath)
		switch {
		case err == nil:
			vars = m
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, errors.Wrapf(err, "read env file %q", dotenvPath)
		}
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}, nil
}

// LoadFile overlays the YAML file at path onto o. Keys absent from the file
// keep their current value.
func LoadFile(path string, o *Options) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %q", path)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(o); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrapf(err, "parse config %q", path)
	}
	return nil
}

// ApplyEnv sets every option whose variable is defined.
func ApplyEnv(t Table, lookup LookupFunc, o *Options) error {
	for _, opt := range t {
		if opt.Env == "" {
			continue
		}
		v, ok := lookup(opt.Env)
		if !ok {
			continue
		}
		if err := opt.parse(o, v); err != nil {
			return err
		}
	}
	return nil
}

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("flag"); name != "" {
			return "--" + name
		}
		return f.Name
	})
	return v
}()

// Finalize resolves --verbose against --format and validates the result.
func Finalize(o *Options) error {
	if o.Verbose {
		switch o.Format {
		case output.FormatCompact, output.FormatVerbose:
			o.Format = output.FormatVerbose
		default:
			return errors.Newf("--verbose conflicts with --format %s", o.Format)
		}
	}
	if err := validate.Struct(o); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return err
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, describe(fe))
		}
		return errors.Newf("%s", strings.Join(msgs, "; "))
	}
	return nil
}

func describe(fe validator.FieldError) string {
	if strings.HasPrefix(fe.Tag(), "endswith") {
		return fe.Field() + " must end with .fasta or .fas"
	}
	switch fe.Tag() {
	case "required":
		return "missing " + fe.Field() + " argument"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "gte":
		return fe.Field() + " must be >= " + fe.Param()
	default:
		return fe.Field() + " is invalid (" + fe.Tag() + ")"
	}
}
