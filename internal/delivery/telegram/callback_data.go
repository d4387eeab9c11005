package telegram

import (
	"errors"
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionRole      = "role"
	actionSwitch    = "switch"
	actionAdd       = "add"
	actionCancel    = "cancel"
	actionList      = "list"
	actionDelete    = "del"
	actionDelConf   = "delconf"
	actionDelCancel = "delcancel"
	actionStart     = "start"
	actionOption    = "opt"
	actionPrevious  = "prev"
	actionNext      = "next"
	actionSubmit    = "submit"
	actionRetake    = "retake"
)

var errMalformedCallback = errors.New("malformed callback data")

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// intParam returns the i-th parameter as an int.
func (cd callbackData) intParam(i int) (int, error) {
	if i >= len(cd.Params) {
		return 0, errMalformedCallback
	}
	n, err := strconv.Atoi(cd.Params[i])
	if err != nil {
		return 0, errMalformedCallback
	}
	return n, nil
}

func (cd callbackData) int64Param(i int) (int64, error) {
	if i >= len(cd.Params) {
		return 0, errMalformedCallback
	}
	n, err := strconv.ParseInt(cd.Params[i], 10, 64)
	if err != nil {
		return 0, errMalformedCallback
	}
	return n, nil
}

func buildRoleCallback(role string) string {
	return callbackData{Action: actionRole, Params: []string{role}}.encode()
}

// buildOptionCallback builds callback data for choosing an option of the
// question at index. The index lets stale keyboards be detected.
func buildOptionCallback(index, option int) string {
	return callbackData{
		Action: actionOption,
		Params: []string{strconv.Itoa(index), strconv.Itoa(option)},
	}.encode()
}

func buildDeleteCallback(id int64) string {
	return callbackData{
		Action: actionDelete,
		Params: []string{strconv.FormatInt(id, 10)},
	}.encode()
}

func buildDeleteConfirmCallback(id int64) string {
	return callbackData{
		Action: actionDelConf,
		Params: []string{strconv.FormatInt(id, 10)},
	}.encode()
}

func buildDeleteCancelCallback(id int64) string {
	return callbackData{
		Action: actionDelCancel,
		Params: []string{strconv.FormatInt(id, 10)},
	}.encode()
}
