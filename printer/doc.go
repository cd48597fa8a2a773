// Package printer renders configuration trees and views as text, YAML or JSON.
package printer
