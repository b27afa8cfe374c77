package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// FormatConfigErrors turns validator failures into a single readable error,
// logging each offending field. The config value itself is logged at debug
// level only since it may carry connection strings.
func FormatConfigErrors(logger *zap.Logger, err error, cfg interface{}) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		logger.Error("invalid config value",
			zap.String("field", fe.Field()),
			zap.String("rule", fe.Tag()),
		)
	}
	logger.Debug("config snapshot", zap.Any("config", cfg))
	return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
}
