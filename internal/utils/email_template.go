package utils

import (
	"fmt"

	"froakie_tcg_back_end/internal/models"
)

// OrderConfirmationHTML génère le corps HTML de l'e-mail de confirmation.
func OrderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 10px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 10px; border: 1px solid #ddd;">%d</td>
				<td style="padding: 10px; border: 1px solid #ddd;">₹%.2f</td>
				<td style="padding: 10px; border: 1px solid #ddd;">₹%.2f</td>
			</tr>`, item.Name, item.Quantity, item.Price, item.Price*float64(item.Quantity))
	}

	addr := order.Customer.Address
	addressHTML := fmt.Sprintf("%s<br>%s %s<br>%s, %s %s",
		addr.Line1, addr.Line2, addr.Landmark, addr.City, addr.State, addr.Pincode)

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Order confirmation</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Thanks for your order, %s!</h2>
		<p>Your payment was verified and your order <strong>%s</strong> is confirmed.</p>

		<h3>Order details</h3>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Card</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Qty</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Unit price</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Total</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
		</table>

		<p style="margin: 4px 0;">Delivery (%s): ₹%.2f</p>
		<p style="margin: 4px 0;">Tax: ₹%.2f</p>
		<p style="margin: 4px 0; font-weight: bold;">Total: ₹%.2f</p>

		<h3>Shipping address</h3>
		<p>%s</p>

		<p style="color: #777; font-size: 12px; margin-top: 30px;">
			Froakie_TCG Store — this is an automated message, please do not reply.
		</p>
	</div>
</body>
</html>`,
		order.Customer.Name, order.OrderID, itemsHTML,
		order.DeliveryType, order.DeliveryCharge, order.Tax, order.Total,
		addressHTML)
}
