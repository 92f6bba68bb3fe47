package testutil

import (
	"os"

	"github.com/spf13/viper"
)

// WriteStringToTempFile writes content to a temp file and returns the file
// path and a cleanup function.
func WriteStringToTempFile(content string) (string, func(), error) {
	tempFile, err := os.CreateTemp("", "temp-*")
	if err != nil {
		return "", nil, err
	}

	if _, err := tempFile.WriteString(content); err != nil {
		tempFile.Close()
		os.Remove(tempFile.Name())
		return "", nil, err
	}

	tempFile.Close()

	cleanup := func() {
		os.Remove(tempFile.Name())
	}

	return tempFile.Name(), cleanup, nil
}

// GetTestViperFromYAML loads a yaml document into a fresh viper instance.
func GetTestViperFromYAML(content string) (*viper.Viper, func(), error) {
	configFile, cleanup, err := WriteStringToTempFile(content)
	if err != nil {
		return nil, nil, err
	}

	testConfig := viper.New()
	testConfig.SetConfigType("yaml")
	testConfig.SetConfigFile(configFile)
	if err := testConfig.ReadInConfig(); err != nil {
		cleanup()
		return nil, nil, err
	}

	return testConfig, cleanup, nil
}
