/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/notargets/gobie/simulation"
)

// ConvergeCmd represents the converge command
var ConvergeCmd = &cobra.Command{
	Use:   "converge",
	Short: "Panel convergence study of the interface quadrature",
	Long: `
Integrates the source potential over the interface for a sequence of panel counts and
compares with the exact mean value of the harmonic potential, output is CSV,

gobie converge -I input.yaml --panels-list 1,2,4,8,16`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		ms := &ModelSetup{Record: args}
		if ms.ICFile, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
			panic(err)
		}
		panels, _ := cmd.Flags().GetIntSlice("panels-list")
		ip, err := processInput(ms)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		cs, err := simulation.NewConvergenceStudy(ip, panels)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = WriteConvergenceCSV(os.Stdout, cs); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(ConvergeCmd)
	ConvergeCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for input parameters")
	ConvergeCmd.Flags().IntSlice("panels-list", []int{1, 2, 4, 8, 16, 32}, "panel counts to run")
}

func WriteConvergenceCSV(w io.Writer, cs *simulation.ConvergenceStudy) (err error) {
	cw := csv.NewWriter(w)
	if err = cw.Write([]string{"panels", "nodes", "mean", "exact", "error"}); err != nil {
		return
	}
	for i := range cs.NumPanels {
		rec := []string{
			strconv.Itoa(cs.NumPanels[i]),
			strconv.Itoa(cs.NumNodes[i]),
			strconv.FormatFloat(cs.Mean[i], 'e', 15, 64),
			strconv.FormatFloat(cs.Exact, 'e', 15, 64),
			strconv.FormatFloat(cs.Err[i], 'e', 6, 64),
		}
		if err = cw.Write(rec); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}
