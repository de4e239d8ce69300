package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/soypat/lily/dyn"
	"github.com/soypat/lily/intrinsic"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (a *app) sumCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "sum [values...]",
		Short: "Sum dynamic values",
		Long: `Adds the given values left to right starting from 0.0.

Each argument is read as a YAML scalar, so 1 is an integer, 1.5 a float,
true a boolean and anything else a string. With --file the values are
read from a YAML sequence instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			arr, err := readValues(file, args)
			if err != nil {
				return intrinsic.Fail(2, err)
			}
			sum, err := a.rt.SumOfArray(arr)
			if err != nil {
				return err
			}
			return a.console.Print(sum)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file holding a sequence of values")
	return cmd
}

func readValues(file string, args []string) (dyn.Array, error) {
	if file != "" {
		if len(args) > 0 {
			return dyn.Array{}, fmt.Errorf("values given both as arguments and --file")
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return dyn.Array{}, err
		}
		var arr dyn.Array
		if err := yaml.Unmarshal(data, &arr); err != nil {
			return dyn.Array{}, fmt.Errorf("parse %s: %w", file, err)
		}
		return arr, nil
	}
	vals := make([]dyn.Value, len(args))
	for i, arg := range args {
		v, err := dyn.ParseValue(arg)
		if err != nil {
			return dyn.Array{}, err
		}
		vals[i] = v
	}
	return dyn.NewArray(vals...), nil
}

func (a *app) sumIntCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sumint [ints...]",
		Short: "Sum 64-bit integers",
		RunE: func(cmd *cobra.Command, args []string) error {
			data := make([]int64, len(args))
			for i, arg := range args {
				n, err := strconv.ParseInt(arg, 0, 64)
				if err != nil {
					return intrinsic.Fail(2, fmt.Errorf("argument %d: %w", i+1, err))
				}
				data[i] = n
			}
			var result int64
			if err := a.rt.SumOfIntArray(intrinsic.NewArray(data), &result); err != nil {
				return err
			}
			return a.console.Print(result)
		},
	}
}
