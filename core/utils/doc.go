// Package utils provides small helpers shared by the feature packages, such as
// converting loosely typed SQL row values.
package utils
