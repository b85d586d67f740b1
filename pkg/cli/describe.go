package cli

import (
	"fmt"
	"sort"

	"github.com/jhump/protoreflect/grpcreflect"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/gosherlock/sherlock/pkg/sherlockapi"
)

var describeOffline bool

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "List the services and methods of the Sherlock API",
	Long: `List the services and methods of the Sherlock API.

By default the live server is queried through gRPC server reflection.
With --offline the bundled interface definitions are listed instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if describeOffline {
			return describeEmbedded()
		}
		return describeLive()
	},
}

// describeEmbedded prints the bundled IDL.
func describeEmbedded() error {
	schema, err := sherlockapi.Load()
	if err != nil {
		return err
	}
	for _, serviceName := range schema.Services() {
		fmt.Println(serviceName)
		svc := schema.Service(serviceName)
		for _, methodName := range svc.MethodNames() {
			m := svc.Method(methodName)
			fmt.Printf("  %s(%s) returns %s\n", methodName, m.Input().Name(), m.Output().Name())
		}
	}
	return nil
}

// describeLive queries the server through gRPC reflection.
func describeLive() error {
	conn, err := grpc.NewClient(serverAddress(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return fmt.Errorf("dial %s: %w", serverAddress(), err)
	}
	defer conn.Close()

	ctx, cancel := callContext()
	defer cancel()

	rc := grpcreflect.NewClientAuto(ctx, conn)
	defer rc.Reset()

	names, err := rc.ListServices()
	if err != nil {
		return fmt.Errorf("list services via reflection: %w", err)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Println(name)
		sd, err := rc.ResolveService(name)
		if err != nil {
			log.Warn("resolve service failed", "service", name, "error", err)
			continue
		}
		for _, m := range sd.GetMethods() {
			fmt.Printf("  %s(%s) returns %s\n", m.GetName(), m.GetInputType().GetName(), m.GetOutputType().GetName())
		}
	}
	return nil
}

func init() {
	describeCmd.Flags().BoolVar(&describeOffline, "offline", false, "Describe the bundled interface definitions instead of the live server")
	rootCmd.AddCommand(describeCmd)
}
