package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

type flagSet struct {
	long  map[string]reflect.Value
	short map[string]reflect.Value
}

func newFlagSet(opts any) *flagSet {
	val := reflect.ValueOf(opts).Elem()
	typ := val.Type()
	fs := &flagSet{long: map[string]reflect.Value{}, short: map[string]reflect.Value{}}
	for i := range typ.NumField() {
		tag := typ.Field(i).Tag
		if flag, ok := tag.Lookup("long"); ok {
			fs.long[flag] = val.Field(i)
		}
		if flag, ok := tag.Lookup("short"); ok {
			fs.short[flag] = val.Field(i)
		}
	}
	return fs
}

// parseFlags sets the fields of opts from args, and returns the arguments
// which are not flags. Boolean short flags can be grouped (-rs), and a
// short flag taking a value may be followed by it directly (-pbulk).
func parseFlags(args []string, opts any) ([]string, error) {
	fs := newFlagSet(opts)
	rest := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(rest, args[i+1:]...), nil
		case strings.HasPrefix(arg, "--"):
			name, value, hasValue := strings.Cut(arg[2:], "=")
			val, ok := fs.long[name]
			if !ok {
				return nil, fmt.Errorf("unknown flag `--%s'", name)
			}
			if val.Kind() == reflect.Bool {
				if hasValue {
					return nil, fmt.Errorf("boolean flag `--%s' cannot have an argument", name)
				}
				val.SetBool(true)
				continue
			}
			if !hasValue {
				if i++; i >= len(args) {
					return nil, fmt.Errorf("expected argument for flag `--%s'", name)
				}
				value = args[i]
			}
			if err := setFlag(val, "--"+name, value); err != nil {
				return nil, err
			}
		case len(arg) > 1 && arg[0] == '-':
			for j := 1; j < len(arg); j++ {
				name := arg[j : j+1]
				val, ok := fs.short[name]
				if !ok {
					return nil, fmt.Errorf("unknown flag `-%s'", name)
				}
				if val.Kind() == reflect.Bool {
					val.SetBool(true)
					continue
				}
				value := arg[j+1:]
				if value == "" {
					if i++; i >= len(args) {
						return nil, fmt.Errorf("expected argument for flag `-%s'", name)
					}
					value = args[i]
				}
				if err := setFlag(val, "-"+name, value); err != nil {
					return nil, err
				}
				break
			}
		default:
			rest = append(rest, arg)
		}
	}
	return rest, nil
}

func setFlag(val reflect.Value, flag, value string) error {
	switch val.Kind() {
	case reflect.String:
		val.SetString(value)
	case reflect.Slice:
		val.Set(reflect.Append(val, reflect.ValueOf(value)))
	case reflect.Pointer:
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid argument for flag `%s': %w", flag, err)
		}
		val.Set(reflect.New(val.Type().Elem()))
		val.Elem().SetInt(int64(v))
	default:
		panic("unsupported flag type: " + val.Type().String())
	}
	return nil
}

// formatFlags lists the flags of opts for the help message. The last field
// is listed separately as the help option.
func formatFlags(opts any) string {
	val := reflect.ValueOf(opts).Elem()
	typ := val.Type()
	var sb strings.Builder
	sb.WriteString("Command Options:\n")
	for i, l := 0, typ.NumField(); i < l; i++ {
		tag := typ.Field(i).Tag
		if i == l-1 {
			sb.WriteString("\nHelp Option:\n")
		}
		var line strings.Builder
		if flag, ok := tag.Lookup("short"); ok {
			line.WriteString("-" + flag + ", ")
		} else {
			line.WriteString("    ")
		}
		line.WriteString("--" + tag.Get("long"))
		switch val.Field(i).Kind() {
		case reflect.Bool:
		case reflect.Pointer:
			line.WriteString(" n")
		default:
			line.WriteString("=")
		}
		fmt.Fprintf(&sb, "  %-24s%s\n", line.String(), tag.Get("description"))
	}
	return sb.String()
}
