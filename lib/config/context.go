package config

import (
	"context"
	"fmt"
)

type contextKey struct{}

func InjectSettingsIntoContext(ctx context.Context, settings *Settings) context.Context {
	return context.WithValue(ctx, contextKey{}, settings)
}

func FromContext(ctx context.Context) (*Settings, error) {
	settingsVal := ctx.Value(contextKey{})
	if settingsVal == nil {
		return nil, fmt.Errorf("failed to grab settings from context")
	}

	settings, isOk := settingsVal.(*Settings)
	if !isOk {
		return nil, fmt.Errorf("settings in context is not of *config.Settings type")
	}

	return settings, nil
}
