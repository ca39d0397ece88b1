package utils

import (
	"cataractcare-service/internal/pkg/constvars"
	"log"
	"os"
	"strconv"
)

func getEnv(key string, defaultValue interface{}) interface{} {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	switch defaultValue.(type) {
	case string:
		return value
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			log.Printf(constvars.ErrEnvParsing, key, err)
			return defaultValue
		}
		return intValue
	case int64:
		int64Value, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			log.Printf(constvars.ErrEnvParsing, key, err)
			return defaultValue
		}
		return int64Value
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			log.Printf(constvars.ErrEnvParsing, key, err)
			return defaultValue
		}
		return boolValue
	default:
		return defaultValue
	}
}

func GetEnvString(key, defaultValue string) string {
	return getEnv(key, defaultValue).(string)
}

func GetEnvInt(key string, defaultValue int) int {
	return getEnv(key, defaultValue).(int)
}

func GetEnvInt64(key string, defaultValue int64) int64 {
	return getEnv(key, defaultValue).(int64)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return getEnv(key, defaultValue).(bool)
}
