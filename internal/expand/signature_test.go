package expand

import "testing"

func TestDeriveErrorName(t *testing.T) {
	tests := []struct {
		fn     string
		suffix string
		want   string
	}{
		{"foo", "Error", "FooError"},
		{"read_config", "Error", "ReadConfigError"},
		{"read_config_file", "Error", "ReadConfigFileError"},
		{"parse__input", "Error", "ParseInputError"},
		{"do_thing", "Failure", "DoThingFailure"},
		{"already_titled", "", "AlreadyTitled"},
	}
	for _, tt := range tests {
		if got := deriveErrorName(tt.fn, tt.suffix); got != tt.want {
			t.Errorf("deriveErrorName(%q, %q) = %q, expected %q",
				tt.fn, tt.suffix, got, tt.want)
		}
	}
}
