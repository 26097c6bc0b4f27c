package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/wyre-technology/syncro-mcp/pkg/domain"
	"github.com/wyre-technology/syncro-mcp/pkg/ports"
	"github.com/wyre-technology/syncro-mcp/pkg/syncro"
)

type assetsHandler struct {
	client ports.ClientFunc
}

func assetTools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("assets_list",
			mcp.WithDescription("List customer assets (RMM devices and tracked hardware)."),
			mcp.WithNumber("customer_id", mcp.Description("Only assets for this customer")),
			mcp.WithString("query", mcp.Description("Free-text search over asset names and serials")),
			mcp.WithNumber("page", mcp.Description("Page number, starting at 1")),
		),
		mcp.NewTool("assets_get",
			mcp.WithDescription("Get one asset by ID, including its RMM properties."),
			mcp.WithNumber("asset_id", mcp.Required(), mcp.Description("Asset ID")),
		),
		mcp.NewTool("assets_update",
			mcp.WithDescription("Update an existing asset. Only provided fields change."),
			mcp.WithNumber("asset_id", mcp.Required(), mcp.Description("Asset ID")),
			mcp.WithString("name", mcp.Description("Asset name")),
			mcp.WithString("asset_type", mcp.Description("Asset type name")),
			mcp.WithObject("properties", mcp.Description("Custom field values to merge")),
		),
	}
}

func (h *assetsHandler) Domain() domain.ID { return domain.Assets }

func (h *assetsHandler) Tools() []mcp.Tool { return assetTools() }

func (h *assetsHandler) Call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	client, err := h.client(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	switch name {
	case "assets_list":
		var p syncro.AssetListParams
		if err := decode(args, &p); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return callResult(client.ListAssets(ctx, p))

	case "assets_get":
		id, err := requireID(args, "asset_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return callResult(client.GetAsset(ctx, id))

	case "assets_update":
		id, err := requireID(args, "asset_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		var p syncro.AssetUpdateParams
		if err := decode(args, &p); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return callResult(client.UpdateAsset(ctx, id, p))

	default:
		return unknownTool(domain.Assets, name)
	}
}
