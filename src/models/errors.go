package models

import "fmt"

var NonPositiveSpotErr = fmt.Errorf("spot price must be positive")
var NonPositiveStrikeErr = fmt.Errorf("strike price must be positive")
var NegativeSigmaErr = fmt.Errorf("volatility must be non-negative")
var NonPositiveDaysErr = fmt.Errorf("days must be a positive integer")
var NonPositivePathsErr = fmt.Errorf("paths must be a positive integer")
var EmptyStrikesErr = fmt.Errorf("at least one strike must be set")
var EmptySigmasErr = fmt.Errorf("at least one sigma must be set")
var CellOutOfRangeErr = fmt.Errorf("grid cell index is out of range")
var CellAlreadySetErr = fmt.Errorf("grid cell has already been written")
var CellNotSetErr = fmt.Errorf("grid cell has not been written")
