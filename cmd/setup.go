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
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gobie/InputParameters"
	"github.com/notargets/gobie/simulation"
)

type ModelSetup struct {
	ICFile  string
	Record  []string
	Profile bool
}

// SetupCmd represents the setup command
var SetupCmd = &cobra.Command{
	Use:   "setup [NPanels DomainPoints Shape Radius NSources Sources... FillLevel]",
	Short: "Discretize the interface and domain, evaluate the RHS and print a summary",
	Long: `
Discretizes the interface with 16 point Gauss-Legendre panels, fills the interior
with evaluation points and evaluates the point source potential on the interface.
Parameters come from a YAML file, from an ordered record on the command line,
or from the built in default case. Flags override any of these.

gobie setup -I input.yaml
gobie setup 2 1 circle 2 2 3+3i -2.5-2.5i superlow`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("setup called")
		ms := &ModelSetup{Record: args}
		if ms.ICFile, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
			panic(err)
		}
		ms.Profile, _ = cmd.Flags().GetBool("profile")
		ip, err := processInput(ms)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = RunSetup(ms, ip); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(SetupCmd)
	SetupCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for input parameters like:\n\t- NPanels\n\t- Radius\n\t- Sources")
	SetupCmd.Flags().IntP("panels", "n", 0, "number of interface panels, overrides the input")
	SetupCmd.Flags().Float64P("radius", "r", 0, "interface radius, overrides the input")
	SetupCmd.Flags().StringP("fill", "f", "", "domain fill level (superlow, low), overrides the input")
	SetupCmd.Flags().BoolP("profile", "p", false, "write a CPU profile of the setup")
	_ = viper.BindPFlag("panels", SetupCmd.Flags().Lookup("panels"))
	_ = viper.BindPFlag("radius", SetupCmd.Flags().Lookup("radius"))
	_ = viper.BindPFlag("fill", SetupCmd.Flags().Lookup("fill"))
}

func processInput(ms *ModelSetup) (ip *InputParameters.SimulationParameters, err error) {
	switch {
	case len(ms.ICFile) != 0 && len(ms.Record) != 0:
		err = fmt.Errorf("supply either an input parameters file (-I, --inputParametersFile) or a record, not both")
		return
	case len(ms.ICFile) != 0:
		var data []byte
		if data, err = os.ReadFile(ms.ICFile); err != nil {
			return
		}
		ip = &InputParameters.SimulationParameters{}
		if err = ip.Parse(data); err != nil {
			return
		}
	case len(ms.Record) != 0:
		ip = &InputParameters.SimulationParameters{Title: "Command Line"}
		if err = ip.ParseRecord(ms.Record); err != nil {
			return
		}
	default:
		ip = InputParameters.Default()
	}
	applyOverrides(ip)
	err = ip.Validate()
	return
}

func applyOverrides(ip *InputParameters.SimulationParameters) {
	if n := viper.GetInt("panels"); n != 0 {
		ip.NPanels = n
	}
	if r := viper.GetFloat64("radius"); r != 0 {
		ip.Radius = r
	}
	if f := viper.GetString("fill"); f != "" {
		ip.FillLevel = f
	}
}

func RunSetup(ms *ModelSetup, ip *InputParameters.SimulationParameters) (err error) {
	var (
		sim *simulation.Simulation
	)
	if ms.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	if sim, err = simulation.NewSimulation(ip); err != nil {
		return
	}
	if err = sim.Setup(); err != nil {
		return
	}
	sim.Print()
	return
}
