// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadTuning читает JSON-файл поверх значений по умолчанию: поля,
// отсутствующие в файле, остаются как в DefaultTuning.
// Пустой путь означает «без переопределений».
func LoadTuning(path string) (Tuning, error) {
	tuning := DefaultTuning()
	if path == "" {
		return tuning, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read tuning file: %w", err)
	}

	if err := json.Unmarshal(file, &tuning); err != nil {
		return Tuning{}, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}

	if err := tuning.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning in %s: %w", path, err)
	}

	log.Printf("Loaded tuning from %s", path)
	return tuning, nil
}
