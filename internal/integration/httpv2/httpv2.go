// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package httpv2 declares the HTTPV2 integration actions.
package httpv2

import (
	"github.com/tombee/soarmcp/internal/action"
)

// Module lists the HTTPV2 actions exposed as tools.
var Module = action.Module{
	Provider: "HTTPV2",
	Actions: []action.Definition{
		{
			Name:        "Ping",
			Description: "Test connectivity.",
		},
		{
			Name:        "Execute HTTP Request",
			Description: "Execute HTTP request.",
			Params: []action.Param{
				{Name: "Method", Type: action.TypeArray, Required: true, Description: "Specify the method for the request."},
				{Name: "URL Path", Type: action.TypeString, Required: true, Description: "Specify the URL that needs to be executed."},
				{Name: "Fields To Return", Type: action.TypeString, Required: true, Description: "Specify what fields to return. Possible values: response_data, redirects, response_code,response_cookies,response_headers,apparent_encoding"},
				{Name: "Request Timeout", Type: action.TypeString, Required: true, Description: "How long to wait for the server to send data before giving up"},
				{Name: "URL Params", Type: action.TypeString, Description: "Specify the parameters for the URL. Any value provided in this parameter will be used alongside the values that are directly provided in the URL path parameters."},
				{Name: "Headers", Type: action.TypeString, Description: "Specify headers for the HTTP request."},
				{Name: "Cookie", Type: action.TypeString, Description: "Specify the parameters that should be constructed into the \"Cookie\" header. This parameter will overwrite the cookie provided in the \"Headers\" parameter."},
				{Name: "Body Payload", Type: action.TypeString, Description: "Specify body for the HTTP request."},
				{Name: "Expected Response Values", Type: action.TypeString, Description: "Specify the expected response values. If this parameter is not empty, then action will work in ASYNC mode and action will execute until the expected values will be seen or until timeout."},
				{Name: "Follow Redirects", Type: action.TypeBoolean, Description: "If enabled, action will follow the redirects."},
				{Name: "Fail on 4xx/5xx", Type: action.TypeBoolean, Description: "If enabled, action will fail, if the status code of the response is 4xx or 5xx."},
				{Name: "Base64 Output", Type: action.TypeBoolean, Description: "If enabled, action will convert the response to base64. This is useful when downloading files. Note: JSON result can't be bigger than 15 mb."},
				{Name: "Save To Case Wall", Type: action.TypeBoolean, Description: "If enabled, action will save the file and attach it to the case wall. Note: the file will be archived with \".zip\" extension. This zip will not be password protected."},
				{Name: "Password Protect Zip", Type: action.TypeBoolean, Description: "If enabled, action will add an \"infected\" password to the zip created with \"Save To Case Wall\" parameter. Use this, when you are dealing with suspicious files."},
			},
		},
	},
}

// Register adds the HTTPV2 tools to r.
func Register(r *action.Registrar) error {
	return r.Register(Module)
}
