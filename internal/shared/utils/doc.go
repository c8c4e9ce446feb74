// Package utils holds small helpers shared by the build and the API.
package utils
